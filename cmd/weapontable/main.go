package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/milk9111/executioner/weapon"
)

// weapontable prints every weapon's costs and scripted damage over a combo.
func main() {
	path := flag.String("weapons", "", "weapons yaml (defaults to prefabs/weapons.yaml)")
	combo := flag.Int("combo", 6, "number of consecutive attacks to show")
	flag.Parse()

	weapons, err := weapon.Load(*path)
	if err != nil {
		log.Fatal(err)
	}
	rows, err := weapon.DamageTable(weapons, *combo)
	if err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "weapon\tattack\tcombo\tstamina\tultimate\tdamage")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.0f\t%.0f\t%.1f\n", r.Weapon, r.Kind, r.Combo, r.Stamina, r.Ultimate, r.Damage)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
}
