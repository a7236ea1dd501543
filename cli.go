//go:build cli
// +build cli

package main

import (
	_ "github.com/zzrilakkuma/sales-activity-management-system/cron/jobs"
	_ "github.com/zzrilakkuma/sales-activity-management-system/custom"

	"github.com/zzrilakkuma/sales-activity-management-system/cmd"
	"github.com/zzrilakkuma/sales-activity-management-system/config"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	cmd.Apply()
	cmd.Execute()
}
