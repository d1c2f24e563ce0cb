package widgets

import "github.com/go-drift/livenative/pkg/core"

// Entries returns the registry entries of every reference adapter.
func Entries() []core.Entry {
	return []core.Entry{
		{Tag: TagColumn, Factory: newColumn},
		{Tag: TagRow, Factory: newRow},
		{Tag: TagBox, Factory: newBox},
		{Tag: TagText, Factory: newText},
		{Tag: TagButton, Factory: newButton},
		{Tag: TagCheckbox, Factory: newCheckbox},
		{Tag: TagSwitch, Factory: newSwitch},
		{Tag: TagSlider, Factory: newSlider},
		{Tag: TagTextField, Factory: newTextField},
		{Tag: TagDivider, Factory: newDivider},
		{Tag: TagIcon, Factory: newIcon},
		{Tag: TagSpacer, Factory: newSpacer},
		{Tag: TagBadge, Factory: newBadge},
		{Tag: TagBadgedBox, Factory: newBadgedBox, Roles: badgedBoxRoles},
		{Tag: TagCard, Factory: newCard, Roles: cardRoles},
	}
}

// RegisterAll registers every reference adapter on reg.
func RegisterAll(reg *core.Registry) error {
	for _, e := range Entries() {
		if err := reg.Register(e); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	if err := RegisterAll(core.DefaultRegistry); err != nil {
		panic(err)
	}
}
