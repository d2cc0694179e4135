package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	vagabondv1alpha1 "github.com/KirkDiggler/vagabond-api/internal/api/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

var (
	actorFile     string
	actorType     string
	actorName     string
	actorLevel    int32
	actorClass    string
	actorAncestry string
	actorStats    string
	actorHitDice  int32
	actorMana     int32
)

var createActorCmd = &cobra.Command{
	Use:   "create-actor",
	Short: "Create a character or NPC",
	Long: `Create an actor from flags or from a JSON document. Examples:

  create-actor --name Wren --level 3 --class wizard --stats might=4,dexterity=5,awareness=3,reason=6,presence=2,luck=3 --mana 8
  create-actor --type npc --name Bandit --hit-dice 3 --stats might=3,dexterity=4
  create-actor --file wren.json`,
	RunE: createActor,
}

func init() {
	createActorCmd.Flags().StringVar(&actorFile, "file", "", "JSON actor document; other flags are ignored")
	createActorCmd.Flags().StringVar(&actorType, "type", string(vagabond.ActorTypeCharacter), "character or npc")
	createActorCmd.Flags().StringVar(&actorName, "name", "", "actor name")
	createActorCmd.Flags().Int32Var(&actorLevel, "level", 1, "character level")
	createActorCmd.Flags().StringVar(&actorClass, "class", "", "class id")
	createActorCmd.Flags().StringVar(&actorAncestry, "ancestry", "", "ancestry id")
	createActorCmd.Flags().StringVar(&actorStats, "stats", "", "comma separated stat=value pairs")
	createActorCmd.Flags().Int32Var(&actorHitDice, "hit-dice", 0, "NPC hit dice")
	createActorCmd.Flags().Int32Var(&actorMana, "mana", 0, "maximum mana; zero for a non-caster")
}

func createActor(cmd *cobra.Command, args []string) error {
	actor, err := actorFromFlags()
	if err != nil {
		return err
	}

	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateActor(ctx, &vagabondv1alpha1.CreateActorRequest{Actor: actor})
	if err != nil {
		return fmt.Errorf("failed to create actor: %w", err)
	}

	fmt.Printf("Created %s %s\n\n", resp.Actor.Type, resp.Actor.ID)
	printActor(resp.Actor)
	return nil
}

func actorFromFlags() (*vagabond.Actor, error) {
	if actorFile != "" {
		data, err := os.ReadFile(actorFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", actorFile, err)
		}
		actor := &vagabond.Actor{}
		if err := json.Unmarshal(data, actor); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", actorFile, err)
		}
		return actor, nil
	}

	stats, err := parseStats(actorStats)
	if err != nil {
		return nil, err
	}

	actor := &vagabond.Actor{
		Type:  vagabond.ActorType(actorType),
		Name:  actorName,
		Stats: stats,
	}

	switch actor.Type {
	case vagabond.ActorTypeCharacter:
		actor.Level = actorLevel
		actor.ClassID = actorClass
		actor.AncestryID = actorAncestry
		actor.Mana = vagabond.Mana{Value: actorMana, Max: actorMana}
	case vagabond.ActorTypeNPC:
		actor.HitDice = actorHitDice
	}

	return actor, nil
}

// parseStats reads "might=4,dexterity=3" into a stat block
func parseStats(raw string) (vagabond.Stats, error) {
	var stats vagabond.Stats
	if strings.TrimSpace(raw) == "" {
		return stats, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return stats, fmt.Errorf("invalid stat %q, want key=value", pair)
		}
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return stats, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		stat := vagabond.Stat{Value: int32(n)}

		switch vagabond.StatKey(key) {
		case vagabond.StatMight:
			stats.Might = stat
		case vagabond.StatDexterity:
			stats.Dexterity = stat
		case vagabond.StatAwareness:
			stats.Awareness = stat
		case vagabond.StatReason:
			stats.Reason = stat
		case vagabond.StatPresence:
			stats.Presence = stat
		case vagabond.StatLuck:
			stats.Luck = stat
		default:
			return stats, fmt.Errorf("unknown stat %q", key)
		}
	}

	return stats, nil
}
