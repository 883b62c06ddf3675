package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdRemind CommandType = "remind"
	CmdCancel CommandType = "cancel"
	CmdList   CommandType = "list"
	CmdDnd    CommandType = "dnd"
	CmdDonor  CommandType = "donor"
	CmdToggle CommandType = "toggle"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "remind", "add":
		cmd.Type = CmdRemind
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "cancel", "rm":
		cmd.Type = CmdCancel
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "list", "ls":
		cmd.Type = CmdList
	case "dnd":
		cmd.Type = CmdDnd
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "donor":
		cmd.Type = CmdDonor
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "on", "off":
		cmd.Type = CmdToggle
		cmd.Args = parts
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Reminders:*
• ` + "`/cooldown remind 1h 30m buy lootbox`" + ` - Create a custom reminder
• ` + "`/cooldown cancel hunt`" + ` - Cancel a pending reminder
• ` + "`/cooldown cancel custom 2`" + ` - Cancel custom reminder #2
• ` + "`/cooldown list`" + ` - List your pending reminders

*Preferences:*
• ` + "`/cooldown dnd on|off`" + ` - Deliver reminders without pinging you
• ` + "`/cooldown donor 0-3`" + ` - Set your donor tier (shortens cooldowns)
• ` + "`/cooldown on|off hunt`" + ` - Enable or disable reminders per activity`
}
