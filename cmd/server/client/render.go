package client

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexeyco/simpletable"
	"github.com/fatih/color"

	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

var (
	critColor = color.New(color.FgYellow, color.Bold)
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

// colorResult paints a check outcome
func colorResult(result vagabond.ResultType) string {
	switch result {
	case vagabond.ResultCrit:
		return critColor.Sprint("CRIT")
	case vagabond.ResultPass:
		return passColor.Sprint("PASS")
	case vagabond.ResultFail:
		return failColor.Sprint("FAIL")
	default:
		return string(result)
	}
}

// propertyTable renders two-column rows under a Property/Value header
func propertyTable(rows [][]string) string {
	table := simpletable.New()

	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: "Property"},
			{Align: simpletable.AlignLeft, Text: "Value"},
		},
	}

	for _, row := range rows {
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: row[0]},
			{Align: simpletable.AlignLeft, Text: row[1]},
		})
	}

	table.SetStyle(simpletable.StyleUnicode)
	return table.String()
}

// printActor shows the stat block and derived values of an actor
func printActor(actor *vagabond.Actor) {
	if actor == nil {
		return
	}

	rows := [][]string{
		{"ID", actor.ID},
		{"Name", actor.Name},
		{"Type", string(actor.Type)},
	}
	if actor.Type == vagabond.ActorTypeCharacter {
		rows = append(rows,
			[]string{"Level", fmt.Sprintf("%d", actor.Level)},
			[]string{"Class", actor.ClassID},
			[]string{"Ancestry", actor.AncestryID},
		)
	} else {
		rows = append(rows, []string{"Hit Dice", fmt.Sprintf("%d", actor.HitDice)})
	}

	for _, key := range vagabond.AllStats {
		value, _ := actor.Stats.Value(key)
		rows = append(rows, []string{capitalize(string(key)), fmt.Sprintf("%d", value)})
	}

	rows = append(rows,
		[]string{"HP", fmt.Sprintf("%d / %d", actor.HP.Value, actor.HP.Max)},
		[]string{"Saves", fmt.Sprintf("endure %d, reflex %d, will %d",
			actor.Saves.Endure.Value, actor.Saves.Reflex.Value, actor.Saves.Will.Value)},
	)

	if actor.Type == vagabond.ActorTypeCharacter {
		rows = append(rows,
			[]string{"Luck", fmt.Sprintf("%d / %d", actor.Luck.Value, actor.Luck.Max)},
			[]string{"Fatigue", fmt.Sprintf("%d", actor.Fatigue)},
			[]string{"Slots", fmt.Sprintf("%d", actor.Slots.Max)},
			[]string{"Speed", fmt.Sprintf("%d ft (crawl %d, travel %d)", actor.Speed.Base, actor.Speed.Crawl, actor.Speed.Travel)},
		)
		if actor.Mana.HasPool() {
			limit := int32(0)
			if actor.Mana.SpendLimit != nil {
				limit = *actor.Mana.SpendLimit
			}
			rows = append(rows, []string{"Mana", fmt.Sprintf("%d / %d (spend limit %d)", actor.Mana.Value, actor.Mana.Max, limit)})
		}
		if len(actor.Skills) > 0 {
			rows = append(rows, []string{"Skills", formatSkills(actor.Skills)})
		}
	}

	fmt.Println(propertyTable(rows))
}

func formatSkills(skills map[string]*vagabond.Skill) string {
	keys := make([]string, 0, len(skills))
	for key := range skills {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		skill := skills[key]
		if skill == nil {
			continue
		}
		mark := ""
		if skill.Trained {
			mark = "*"
		}
		lines = append(lines, fmt.Sprintf("%s%s %d", key, mark, skill.Difficulty))
	}
	return strings.Join(lines, "\n")
}

func formatDice(dice []int32) string {
	parts := make([]string, len(dice))
	for i, d := range dice {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
