package main

import (
	"fmt"
	"os"

	"github.com/osse101/RewardEngine_Go/internal/config"
	"github.com/osse101/RewardEngine_Go/internal/rewardconfig"
)

type CheckConfigCommand struct{}

func (c *CheckConfigCommand) Name() string {
	return "check-config"
}

func (c *CheckConfigCommand) Description() string {
	return "Validate the reward config and list disabled sections"
}

// Run fails when the file cannot be parsed or any section is disabled.
func (c *CheckConfigCommand) Run(args []string) error {
	path := config.ConfigPathRewards
	if v, ok := os.LookupEnv("REWARD_CONFIG_PATH"); ok {
		path = v
	}
	if len(args) > 0 {
		path = args[0]
	}

	PrintHeader(fmt.Sprintf("Checking %s", path))

	cat, err := rewardconfig.Load(path)
	if err != nil {
		return err
	}

	PrintInfo("%d pack(s), %d item(s), %d milestone(s)", len(cat.Packs()), len(cat.Items()), len(cat.Milestones()))
	issues := cat.Issues()
	for _, issue := range issues {
		PrintWarning("%s", issue.Error())
	}
	if len(issues) > 0 {
		return fmt.Errorf("%d section(s) disabled", len(issues))
	}
	PrintSuccess("Reward config is valid")
	return nil
}
