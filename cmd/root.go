package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zakariaejaidi/classfy/app"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "classfy <源目录> <目标目录>",
	Short: "按类型整理文件并去除重复内容",
	Long: `Classfy 把源目录中的文件整理进目标目录:

- 按扩展名归入固定分类 (images/documents/musics/videos/archives/others)
- 按时间戳和内容哈希前缀生成确定性文件名
- 基于 SHA-1 指纹跳过重复内容，运行结束输出重复清单`,
	Args: cobra.ExactArgs(2),
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	stats, err := app.RunOrganize(&app.OrganizeOptions{
		SourceDir: args[0],
		DestDir:   args[1],
		Verbose:   verbose,
	})
	if err != nil {
		return err
	}

	fmt.Println(app.RenderReport(stats))

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "显示详细日志")
}
