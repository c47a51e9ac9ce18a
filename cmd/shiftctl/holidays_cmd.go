package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shiftboard/internal/dto"
	"shiftboard/internal/service"
)

func newHolidaysCmd(bootstrap bootstrapFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "节假日日历管理",
	}

	var (
		orgID  string
		userID string
		file   string
		url    string
	)
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "从 ICS 文件或订阅地址导入节假日",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == (url == "") {
				return fmt.Errorf("--file 与 --url 必须且只能指定一个")
			}
			a, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer a.close()

			svc := a.services().Holiday
			viewer := service.Viewer{OrganizationID: orgID, UserID: userID}

			var resp *dto.ImportHolidaysResponse
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				resp, err = svc.ImportICS(cmd.Context(), viewer, f)
				if err != nil {
					return err
				}
			} else {
				resp, err = svc.ImportFromURL(cmd.Context(), viewer, &dto.ImportHolidaysRequest{URL: url})
				if err != nil {
					return err
				}
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
	importCmd.Flags().StringVar(&orgID, "org", "", "组织 ID（必填）")
	importCmd.Flags().StringVar(&userID, "user", "shiftctl", "记录为操作人的用户 ID")
	importCmd.Flags().StringVar(&file, "file", "", "本地 ICS 文件")
	importCmd.Flags().StringVar(&url, "url", "", "ICS 订阅地址（支持 webcal://）")
	_ = importCmd.MarkFlagRequired("org")

	list := &cobra.Command{
		Use:   "list",
		Short: "列出组织的节假日",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer a.close()

			items, err := a.services().Holiday.List(cmd.Context(), service.Viewer{OrganizationID: orgID})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), items)
		},
	}
	list.Flags().StringVar(&orgID, "org", "", "组织 ID（必填）")
	_ = list.MarkFlagRequired("org")

	cmd.AddCommand(importCmd, list)
	return cmd
}
