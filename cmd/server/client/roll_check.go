package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	vagabondv1alpha1 "github.com/KirkDiggler/vagabond-api/internal/api/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

var (
	checkFavor  bool
	checkHinder bool
)

var rollCheckCmd = &cobra.Command{
	Use:   "roll-check [actor-id] [skill|save|attack] [key]",
	Short: "Roll a skill check, save or attack",
	Long: `Roll a d20 check against the actor's difficulty. Examples:

  roll-check char-123 skill arcana --favor
  roll-check char-123 save reflex
  roll-check char-123 attack weapon_sword --hinder`,
	Args: cobra.ExactArgs(3),
	RunE: rollCheck,
}

var rollDamageCmd = &cobra.Command{
	Use:   "roll-damage [actor-id] [weapon-id]",
	Short: "Roll weapon damage",
	Args:  cobra.ExactArgs(2),
	RunE:  rollDamage,
}

func init() {
	rollCheckCmd.Flags().BoolVar(&checkFavor, "favor", false, "roll with favor (+d6)")
	rollCheckCmd.Flags().BoolVar(&checkHinder, "hinder", false, "roll hindered (-d6)")
}

func rollCheck(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlayClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollCheck(ctx, &vagabondv1alpha1.RollCheckRequest{
		ActorID: args[0],
		Kind:    vagabond.CheckKind(args[1]),
		Key:     args[2],
		Favor:   checkFavor,
		Hinder:  checkHinder,
	})
	if err != nil {
		return fmt.Errorf("failed to roll check: %w", err)
	}

	result := resp.Result
	fmt.Println(propertyTable([][]string{
		{"Check", result.Label},
		{"Formula", result.Formula},
		{"Dice", formatDice(result.Dice)},
		{"Total", fmt.Sprintf("%d", result.Total)},
		{"Difficulty", fmt.Sprintf("%d", result.Difficulty)},
		{"Result", colorResult(result.ResultType)},
	}))
	return nil
}

func rollDamage(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlayClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollDamage(ctx, &vagabondv1alpha1.RollDamageRequest{
		ActorID:  args[0],
		WeaponID: args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to roll damage: %w", err)
	}

	damage := resp.Damage
	fmt.Println(propertyTable([][]string{
		{"Damage", damage.Label},
		{"Formula", damage.Formula},
		{"Dice", formatDice(damage.Dice)},
		{"Total", fmt.Sprintf("%d", damage.Total)},
	}))
	return nil
}
