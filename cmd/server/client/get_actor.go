package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	vagabondv1alpha1 "github.com/KirkDiggler/vagabond-api/internal/api/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

var getActorCmd = &cobra.Command{
	Use:   "get-actor [actor-id]",
	Short: "Show an actor with its derived values",
	Args:  cobra.ExactArgs(1),
	RunE:  getActor,
}

var listPlayerID string

var listActorsCmd = &cobra.Command{
	Use:   "list-actors [character|npc]",
	Short: "List actors, optionally filtered by type and player",
	Args:  cobra.MaximumNArgs(1),
	RunE:  listActors,
}

var deleteActorCmd = &cobra.Command{
	Use:   "delete-actor [actor-id]",
	Short: "Delete an actor",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteActor,
}

func init() {
	listActorsCmd.Flags().StringVar(&listPlayerID, "player", "", "only actors owned by this player")
}

func getActor(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetActor(ctx, &vagabondv1alpha1.GetActorRequest{ActorID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get actor: %w", err)
	}

	printActor(resp.Actor)
	return nil
}

func listActors(cmd *cobra.Command, args []string) error {
	req := &vagabondv1alpha1.ListActorsRequest{PlayerID: listPlayerID}
	if len(args) == 1 {
		req.Type = vagabond.ActorType(args[0])
	}

	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListActors(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list actors: %w", err)
	}

	rows := make([][]string, 0, len(resp.Actors))
	for _, actor := range resp.Actors {
		rows = append(rows, []string{actor.ID, fmt.Sprintf("%s (%s, hp %d/%d)", actor.Name, actor.Type, actor.HP.Value, actor.HP.Max)})
	}

	fmt.Printf("Found %d actors\n", len(resp.Actors))
	if len(rows) > 0 {
		fmt.Println(propertyTable(rows))
	}
	return nil
}

func deleteActor(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteActor(ctx, &vagabondv1alpha1.DeleteActorRequest{ActorID: args[0]}); err != nil {
		return fmt.Errorf("failed to delete actor: %w", err)
	}

	fmt.Printf("Deleted actor %s\n", args[0])
	return nil
}
