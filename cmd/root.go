// Package cmd 提供CineSong的命令行入口，基于Cobra构建
package cmd

import (
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "cinesong",
	Short:   "CineSong 基于内容相似度的影片推荐服务",
	Long:    `CineSong从MongoDB影片目录构建词频-逆文档频率向量，按题材余弦相似度提供推荐接口。`,
	Version: Version,
}

// Execute 由main.main()调用，只执行一次
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
