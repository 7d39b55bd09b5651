package charserver

import "github.com/sadroeck/heimdall-go/internal/model"

// StartingCharacterFixture is the per-class starting inventory and
// location a newly created character is seeded with (spec.md §6
// configuration: "starting-character fixtures for Novice and Summoner
// each carrying an initial item list and a starting Location").
type StartingCharacterFixture struct {
	Items    []model.Item
	Location model.Location
}

// StartingCharacterFixtures maps a creatable class to its fixture.
// Classes outside this map cannot be created (spec.md §4.5 InvalidClass).
type StartingCharacterFixtures map[model.Class]StartingCharacterFixture
