package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shiftboard/internal/dto"
	"shiftboard/internal/service"
)

func newExportCmd(bootstrap bootstrapFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "导出排班日历",
	}

	var (
		orgID  string
		userID string
		mode   string
		date   string
		outDir string
	)

	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "导出日历与甘特为 Excel",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer a.close()

			viewer := service.Viewer{OrganizationID: orgID, UserID: userID}
			buf, filename, err := a.services().Export.ExportCalendar(cmd.Context(), viewer, &dto.ExportCalendarQuery{Mode: mode, Date: date})
			if err != nil {
				return err
			}
			return writeFile(cmd, outDir, filename, buf.Bytes())
		},
	}
	calendarCmd.Flags().StringVar(&mode, "mode", "", "day / week / month，缺省沿用该用户当前视图")
	calendarCmd.Flags().StringVar(&date, "date", "", "参考日期 YYYY-MM-DD")

	var employeeID string
	shiftsCmd := &cobra.Command{
		Use:   "shifts",
		Short: "导出员工班次为 ICS",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer a.close()

			viewer := service.Viewer{OrganizationID: orgID, UserID: userID}
			body, filename, err := a.services().Export.ExportShiftsICS(cmd.Context(), viewer, employeeID)
			if err != nil {
				return err
			}
			return writeFile(cmd, outDir, filename, body)
		},
	}
	shiftsCmd.Flags().StringVar(&employeeID, "employee", "", "员工 ID（必填）")
	_ = shiftsCmd.MarkFlagRequired("employee")

	for _, c := range []*cobra.Command{calendarCmd, shiftsCmd} {
		c.Flags().StringVar(&orgID, "org", "", "组织 ID（必填）")
		c.Flags().StringVar(&userID, "user", "shiftctl", "视图状态所属用户")
		c.Flags().StringVar(&outDir, "out", ".", "输出目录")
		_ = c.MarkFlagRequired("org")
	}

	cmd.AddCommand(calendarCmd, shiftsCmd)
	return cmd
}

func writeFile(cmd *cobra.Command, dir, name string, body []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, body, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), p)
	return nil
}
