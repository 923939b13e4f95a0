package weapon

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/executioner/prefabs"
)

// DamageModifier runs a weapon script with `base`, `combo` and `kind` set and
// reads back `damage`.
type DamageModifier struct {
	path     string
	compiled *tengo.Compiled
}

// CompileDamageScript compiles src. path is only used in errors.
func CompileDamageScript(path string, src []byte) (*DamageModifier, error) {
	script := tengo.NewScript(src)
	_ = script.Add("base", 0.0)
	_ = script.Add("combo", 0)
	_ = script.Add("kind", "")
	_ = script.Add("damage", 0.0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("weapon: compile %s: %w", path, err)
	}
	return &DamageModifier{path: path, compiled: compiled}, nil
}

// LoadDamageScript loads and compiles a script from the prefab scripts dir.
func LoadDamageScript(name string) (*DamageModifier, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("weapon: load %s: %w", name, err)
	}
	return CompileDamageScript(name, src)
}

// Apply returns the modified damage. Each call runs a fresh clone of the
// compiled script.
func (m *DamageModifier) Apply(kind AttackKind, base float64, combo int) (float64, error) {
	if m == nil || m.compiled == nil {
		return base, nil
	}
	c := m.compiled.Clone()
	if err := c.Set("base", base); err != nil {
		return base, err
	}
	if err := c.Set("combo", combo); err != nil {
		return base, err
	}
	if err := c.Set("kind", string(kind)); err != nil {
		return base, err
	}
	if err := c.Set("damage", base); err != nil {
		return base, err
	}
	if err := c.Run(); err != nil {
		return base, fmt.Errorf("weapon: run %s: %w", m.path, err)
	}
	v := c.Get("damage")
	if v == nil || v.IsUndefined() {
		return base, nil
	}
	out := v.Float()
	if out < 0 {
		out = 0
	}
	return out, nil
}
