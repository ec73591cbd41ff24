package talents

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Slatyo/Valheim-Viking/internal/platform/errors/i18n"
	"github.com/Slatyo/Valheim-Viking/internal/talents/authority"
	"github.com/Slatyo/Valheim-Viking/internal/talents/channel"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/command"
)

const consoleHelp = `Commands:
  choose <entry>          choose an entry point and allocate its start node
  alloc <node>            spend one point on a node
  undo                    refund the most recent allocation
  reset                   refund every allocated point
  slot <n> <ability>      assign an ability to action bar slot n
  slot <n> clear          clear action bar slot n
  points                  show spent and available points
  show                    show allocated nodes and slots
  entries                 list entry points
  help                    show this help
  quit                    exit`

// Console drives an interactive talent session for one player.
type Console struct {
	Submitter channel.Submitter
	Authority *authority.Authority
	PlayerID  string
	Locale    string
}

// Loop reads commands from in and writes responses to out until quit, EOF,
// or context cancellation.
func (c *Console) Loop(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "talents console for %s (help for commands)\n", c.PlayerID)
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			return nil
		}
		message, quit, err := c.Execute(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if message != "" {
			fmt.Fprintln(out, message)
		}
		if quit {
			return nil
		}
	}
}

// Execute runs one console command line and returns the message to print
// and whether the session should end. The error return covers
// infrastructure failures only; rejected commands come back as messages.
func (c *Console) Execute(ctx context.Context, line string) (string, bool, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return "", false, nil
	}

	switch fields[0] {
	case "help", "commands":
		return consoleHelp, false, nil
	case "quit", "exit":
		return "farewell", true, nil
	case "choose":
		if len(fields) != 2 {
			return "usage: choose <entry>", false, nil
		}
		cmd, err := channel.NewChooseEntryPoint(c.PlayerID, fields[1])
		if err != nil {
			return "", false, err
		}
		return c.submit(ctx, cmd, fmt.Sprintf("entry point %s chosen", fields[1]))
	case "alloc", "allocate":
		if len(fields) != 2 {
			return "usage: alloc <node>", false, nil
		}
		cmd, err := channel.NewAllocateNode(c.PlayerID, fields[1])
		if err != nil {
			return "", false, err
		}
		return c.submit(ctx, cmd, fmt.Sprintf("allocated %s", fields[1]))
	case "undo", "backtrack":
		cmd, err := channel.NewBacktrack(c.PlayerID)
		if err != nil {
			return "", false, err
		}
		return c.submit(ctx, cmd, "allocation undone")
	case "reset":
		cmd, err := channel.NewFullReset(c.PlayerID)
		if err != nil {
			return "", false, err
		}
		return c.submit(ctx, cmd, "all points refunded")
	case "slot":
		if len(fields) != 3 {
			return "usage: slot <n> <ability|clear>", false, nil
		}
		slot, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Sprintf("slot index %q is not a number", fields[1]), false, nil
		}
		abilityID := fields[2]
		if abilityID == "clear" {
			abilityID = ""
		}
		cmd, err := channel.NewSetAbilitySlot(c.PlayerID, slot, abilityID)
		if err != nil {
			return "", false, err
		}
		return c.submit(ctx, cmd, fmt.Sprintf("slot %d set", slot))
	case "points":
		return c.points(ctx)
	case "show":
		return c.show(ctx)
	case "entries":
		return c.entries(), false, nil
	}

	return fmt.Sprintf("unknown command %q (help for commands)", fields[0]), false, nil
}

func (c *Console) submit(ctx context.Context, cmd command.Command, accepted string) (string, bool, error) {
	result, err := c.Submitter.Submit(ctx, cmd)
	if err != nil {
		return "", false, err
	}
	if !result.Accepted() {
		lines := make([]string, 0, len(result.Rejections))
		for _, rejection := range result.Rejections {
			lines = append(lines, i18n.Message(c.Locale, rejection.Code, rejection.Metadata))
		}
		return strings.Join(lines, "\n"), false, nil
	}
	return accepted, false, nil
}

func (c *Console) points(ctx context.Context) (string, bool, error) {
	spent, err := c.Authority.SpentPoints(ctx, c.PlayerID)
	if err != nil {
		return "", false, err
	}
	available, err := c.Authority.AvailablePoints(ctx, c.PlayerID)
	if err != nil {
		return "", false, err
	}
	return fmt.Sprintf("spent %d, available %d", spent, available), false, nil
}

func (c *Console) show(ctx context.Context) (string, bool, error) {
	snapshot, err := c.Authority.State(ctx, c.PlayerID)
	if err != nil {
		return "", false, err
	}
	var sb strings.Builder
	if snapshot.EntryPointID == "" {
		sb.WriteString("no entry point chosen")
	} else {
		fmt.Fprintf(&sb, "entry point: %s", snapshot.EntryPointID)
	}
	nodeIDs := make([]string, 0, len(snapshot.AllocatedRanks))
	for nodeID := range snapshot.AllocatedRanks {
		nodeIDs = append(nodeIDs, nodeID)
	}
	sort.Strings(nodeIDs)
	for _, nodeID := range nodeIDs {
		fmt.Fprintf(&sb, "\n  %s rank %d", nodeID, snapshot.AllocatedRanks[nodeID])
	}
	slots := make([]int, 0, len(snapshot.AbilitySlots))
	for slot := range snapshot.AbilitySlots {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	for _, slot := range slots {
		fmt.Fprintf(&sb, "\nslot %d: %s", slot, snapshot.AbilitySlots[slot])
	}
	return sb.String(), false, nil
}

func (c *Console) entries() string {
	var sb strings.Builder
	sb.WriteString("entry points:")
	for _, entry := range c.Authority.Catalog().EntryPoints() {
		fmt.Fprintf(&sb, "\n  %s (start %s)", entry.ID, entry.StartNodeID)
	}
	return sb.String()
}
