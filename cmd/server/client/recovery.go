package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	vagabondv1alpha1 "github.com/KirkDiggler/vagabond-api/internal/api/vagabond/v1alpha1"
)

var (
	restLong   bool
	luckAmount int32
)

var restCmd = &cobra.Command{
	Use:   "rest [actor-id]",
	Short: "Take a short or long rest",
	Long: `Rest a character. A long rest heals to full, or removes one fatigue
when already at full HP, and refills luck and mana.

  rest char-123 --long`,
	Args: cobra.ExactArgs(1),
	RunE: rest,
}

var breatherCmd = &cobra.Command{
	Use:   "breather [actor-id]",
	Short: "Take a breather and regain HP equal to might",
	Args:  cobra.ExactArgs(1),
	RunE:  breather,
}

var spendLuckCmd = &cobra.Command{
	Use:   "spend-luck [actor-id]",
	Short: "Spend luck points",
	Args:  cobra.ExactArgs(1),
	RunE:  spendLuck,
}

func init() {
	restCmd.Flags().BoolVar(&restLong, "long", false, "take a long rest")
	spendLuckCmd.Flags().Int32Var(&luckAmount, "amount", 1, "luck to spend")
}

func rest(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Rest(ctx, &vagabondv1alpha1.RestRequest{ActorID: args[0], Long: restLong})
	if err != nil {
		return fmt.Errorf("failed to rest: %w", err)
	}

	fmt.Println(propertyTable([][]string{
		{"HP restored", fmt.Sprintf("%d", resp.HPRestored)},
		{"Fatigue removed", fmt.Sprintf("%d", resp.FatigueRemoved)},
		{"Luck restored", fmt.Sprintf("%d", resp.LuckRestored)},
		{"Mana restored", fmt.Sprintf("%d", resp.ManaRestored)},
	}))
	printActor(resp.Actor)
	return nil
}

func breather(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Breather(ctx, &vagabondv1alpha1.BreatherRequest{ActorID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to take a breather: %w", err)
	}

	fmt.Printf("%s regains %d HP (%d / %d)\n", resp.Actor.Name, resp.HPRegained, resp.Actor.HP.Value, resp.Actor.HP.Max)
	return nil
}

func spendLuck(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SpendLuck(ctx, &vagabondv1alpha1.SpendLuckRequest{ActorID: args[0], Amount: luckAmount})
	if err != nil {
		return fmt.Errorf("failed to spend luck: %w", err)
	}

	fmt.Printf("%s has %d / %d luck left\n", resp.Actor.Name, resp.Actor.Luck.Value, resp.Actor.Luck.Max)
	return nil
}
