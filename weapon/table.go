package weapon

// DamageRow is one line of a weapon damage table.
type DamageRow struct {
	Weapon   string
	Kind     AttackKind
	Combo    int
	Stamina  float64
	Ultimate float64
	Damage   float64
}

// DamageTable resolves light and heavy damage for combo indices
// [0, combo) and the finisher once, for every weapon, through each weapon's
// damage script.
func DamageTable(weapons []Weapon, combo int) ([]DamageRow, error) {
	m, err := NewManager(weapons, nil, nil)
	if err != nil {
		return nil, err
	}
	combo = max(combo, 1)

	var rows []DamageRow
	for i := range m.weapons {
		m.selected = i
		w := &m.weapons[i]
		for n := range combo {
			m.attack = n
			for _, kind := range []AttackKind{AttackLight, AttackHeavy} {
				rows = append(rows, row(w, kind, n, m.AttackDamage(kind)))
			}
		}
		m.attack = 0
		rows = append(rows, row(w, AttackFinisher, 0, m.AttackDamage(AttackFinisher)))
	}
	return rows, nil
}

func row(w *Weapon, kind AttackKind, combo int, damage float64) DamageRow {
	attrs := w.Attack(kind).Attributes
	return DamageRow{
		Weapon:   w.Name,
		Kind:     kind,
		Combo:    combo,
		Stamina:  attrs.Stamina,
		Ultimate: attrs.Ultimate,
		Damage:   damage,
	}
}
