package testdata

import (
	"fmt"

	"toonbench/toon"
)

// Size selects one of the built-in sample datasets.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// AllSizes returns every built-in dataset size.
func AllSizes() []Size {
	return []Size{Small, Medium, Large}
}

// Dataset returns the built-in sample dataset for a size.
func Dataset(size Size) (toon.Dataset, error) {
	switch size {
	case Small:
		return smallDataset(), nil
	case Medium:
		return mediumDataset(), nil
	case Large:
		return largeDataset(), nil
	}
	return nil, fmt.Errorf("testdata: invalid dataset size %q, must be one of %v", size, AllSizes())
}

func employee(name, role string, skills []string, active bool, experience int64) toon.Record {
	return toon.Record{
		{Key: "name", Value: toon.Str(name)},
		{Key: "role", Value: toon.Str(role)},
		{Key: "skills", Value: toon.List(skills...)},
		{Key: "active", Value: toon.Bool(active)},
		{Key: "experience", Value: toon.Int(experience)},
	}
}

func smallDataset() toon.Dataset {
	return toon.Dataset{
		employee("Jenil", "Developer", []string{"C#", ".NET", "Angular"}, true, 4),
	}
}

func mediumDataset() toon.Dataset {
	return toon.Dataset{
		employee("Jenil", "Developer", []string{"C#", ".NET", "Angular"}, true, 4),
		employee("Sarah", "Designer", []string{"Figma", "Sketch", "Photoshop"}, true, 6),
		employee("Marcus", "Manager", []string{"Leadership", "Agile", "Communication"}, false, 10),
	}
}

func largeDataset() toon.Dataset {
	roles := []string{"Developer", "Designer", "Manager", "Analyst"}
	ds := make(toon.Dataset, 0, 50)
	for i := 0; i < 50; i++ {
		skills := make([]string, 3+i%5)
		for j := range skills {
			skills[j] = fmt.Sprintf("Skill%d", j)
		}
		ds = append(ds, employee(
			fmt.Sprintf("Employee%d", i),
			roles[i%4],
			skills,
			i%3 != 0,
			int64(i%15+1),
		))
	}
	return ds
}
