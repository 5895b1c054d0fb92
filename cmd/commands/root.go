package commands

import (
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://127.0.0.1:8080/api"

// NewRootCmd 命令行入口：serve 启动服务，seed 与 board 通过 HTTP API 操作已运行的服务
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pageant",
		Short:         "Pageant scoring and leaderboard service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		ServeCmd(),
		SeedCmd(),
		BoardCmd(),
	)
	return root
}
