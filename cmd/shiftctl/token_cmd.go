package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shiftboard/pkg/jwt"
)

// newTokenCmd 签发本地调试用的访问令牌，正式令牌由门户签发
func newTokenCmd(bootstrap bootstrapFunc) *cobra.Command {
	var userID, role, orgID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "签发调试用访问令牌",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(false)
			if err != nil {
				return err
			}
			defer a.close()

			token, err := jwt.NewManager(&a.cfg.Auth).GenerateAccessToken(userID, role, orgID)
			if err != nil {
				return fmt.Errorf("签发令牌失败: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "用户 ID（必填）")
	cmd.Flags().StringVar(&role, "role", "scheduler", "角色：admin / scheduler / staff")
	cmd.Flags().StringVar(&orgID, "org", "", "组织 ID（必填）")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
