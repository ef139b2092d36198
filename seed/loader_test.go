package seed

import (
	"encoding/json"
	"testing"
)

func TestRaceFixtureFormat(t *testing.T) {
	data := `[{
		"race": "HUM",
		"name": "Human",
		"reroll_cost": 50000,
		"has_apothecary": true,
		"positions": [
			{"name": "Lineman", "max_count": 16},
			{"name": "Blitzer", "max_count": 4}
		]
	}]`

	var fixtures []raceFixture
	if err := json.Unmarshal([]byte(data), &fixtures); err != nil {
		t.Fatalf("unmarshal race fixture: %v", err)
	}
	if len(fixtures) != 1 {
		t.Fatalf("expected 1 race, got %d", len(fixtures))
	}

	race := fixtures[0]
	if race.Race != "HUM" || race.RerollCost != 50000 || !race.HasApothecary {
		t.Fatalf("unexpected race fields: %+v", race)
	}
	if len(race.Positions) != 2 || race.Positions[1].MaxCount != 4 {
		t.Fatalf("unexpected positions: %+v", race.Positions)
	}
}

func TestPositionFixtureFormat(t *testing.T) {
	data := `[{
		"name": "Troll",
		"movement": 4,
		"strength": 5,
		"agility": 5,
		"armor": 10,
		"passing": null,
		"cost": 115000,
		"traits": ["Loner", "Regeneration"],
		"starting_skills": [],
		"primary_skill_categories": ["Strength"],
		"secondary_skill_categories": ["Agility", "Passing"]
	}]`

	var fixtures []positionFixture
	if err := json.Unmarshal([]byte(data), &fixtures); err != nil {
		t.Fatalf("unmarshal position fixture: %v", err)
	}

	position := fixtures[0]
	if position.Passing != nil {
		t.Fatalf("expected nil passing for a position that cannot pass, got %v", *position.Passing)
	}
	if position.Cost != 115000 || len(position.Traits) != 2 {
		t.Fatalf("unexpected position fields: %+v", position)
	}
	if len(position.SecondarySkillCategories) != 2 {
		t.Fatalf("unexpected secondary categories: %+v", position.SecondarySkillCategories)
	}
}
