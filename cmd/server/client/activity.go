package client

import (
	"context"
	"fmt"
	"time"

	"github.com/alexeyco/simpletable"
	"github.com/spf13/cobra"

	vagabondv1alpha1 "github.com/KirkDiggler/vagabond-api/internal/api/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

var activityLimit int32

var activityCmd = &cobra.Command{
	Use:   "activity [actor-id]",
	Short: "Show the activity log, newest first",
	Long: `Show recent rolls, casts and recoveries. Without an actor ID the
global log is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: listActivity,
}

var checkPerkCmd = &cobra.Command{
	Use:   "check-perk [actor-id] [perk-id]",
	Short: "Check whether an actor meets a perk's prerequisites",
	Args:  cobra.ExactArgs(2),
	RunE:  checkPerk,
}

func init() {
	activityCmd.Flags().Int32Var(&activityLimit, "limit", 20, "maximum entries")
}

func listActivity(cmd *cobra.Command, args []string) error {
	req := &vagabondv1alpha1.ListActivityRequest{Limit: activityLimit}
	if len(args) == 1 {
		req.ActorID = args[0]
	}

	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListActivity(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list activity: %w", err)
	}

	table := simpletable.New()
	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: "When"},
			{Align: simpletable.AlignLeft, Text: "Actor"},
			{Align: simpletable.AlignLeft, Text: "Kind"},
			{Align: simpletable.AlignLeft, Text: "Label"},
			{Align: simpletable.AlignRight, Text: "Total"},
			{Align: simpletable.AlignLeft, Text: "Outcome"},
		},
	}

	for _, entry := range resp.Entries {
		actor := entry.ActorName
		if actor == "" {
			actor = entry.ActorID
		}
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: time.Unix(entry.CreatedAt, 0).Format(time.DateTime)},
			{Align: simpletable.AlignLeft, Text: actor},
			{Align: simpletable.AlignLeft, Text: entry.Kind},
			{Align: simpletable.AlignLeft, Text: entry.Label},
			{Align: simpletable.AlignRight, Text: fmt.Sprintf("%d", entry.Total)},
			{Align: simpletable.AlignLeft, Text: colorResult(vagabond.ResultType(entry.Outcome))},
		})
	}

	table.SetStyle(simpletable.StyleUnicode)
	fmt.Println(table.String())
	return nil
}

func checkPerk(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createActorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CheckPerkPrerequisites(ctx, &vagabondv1alpha1.CheckPerkPrerequisitesRequest{
		ActorID: args[0],
		PerkID:  args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to check perk: %w", err)
	}

	if resp.Met {
		fmt.Println(passColor.Sprint("All prerequisites met"))
		return nil
	}

	fmt.Println(failColor.Sprint("Unmet prerequisites:"))
	for _, unmet := range resp.Unmet {
		fmt.Printf("  - %s\n", unmet)
	}
	return nil
}
