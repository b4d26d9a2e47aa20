package main

import (
	"fmt"
	"io"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/config"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/db"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	settings_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/settings-case"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Integrationseinstellungen eines Unternehmens",
	}
	cmd.AddCommand(settingsShowCmd())
	return cmd
}

func settingsShowCmd() *cobra.Command {
	var companyID string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Einstellungen anzeigen (legt Standardwerte an, falls noch keine existieren)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPostgres(cmd.Context(), func(cfg *config.AppConfig, pool *pgxpool.Pool) error {
				rdb, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, cfg.DATABASE.Redis.DB)
				if err != nil {
					return err
				}
				defer rdb.Close()

				service := settings_case.NewSettingsService(pool, rdb, cfg.SettingsDefaults(), cfg.TASKS.SettingsCacheTTL)
				settings, appErr := service.GetOrCreate(cmd.Context(), companyID)
				if appErr != nil {
					return appErr
				}
				renderSettings(cmd.OutOrStdout(), settings)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&companyID, "company", "", "Unternehmens-ID")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

func renderSettings(w io.Writer, s *entity.IntegrationSettingsEntity) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(fmt.Sprintf("company %s", s.CompanyID))
	tw.AppendHeader(table.Row{"Setting", "Value"})
	tw.AppendRows([]table.Row{
		{"allow_employee_task_creation", s.AllowEmployeeTaskCreation},
		{"allow_employee_task_assignment", s.AllowEmployeeTaskAssignment},
		{"allow_intra_department_assignments", s.AllowIntraDepartmentAssignments},
		{"allow_multi_task_assignment", s.AllowMultiTaskAssignment},
		{"allow_timeline_priority_editing", s.AllowTimelinePriorityEditing},
		{"cross_department_redirection", s.CrossDepartmentRedirection},
	})
	tw.AppendSeparator()
	updatedBy := "-"
	if s.UpdatedBy != nil {
		updatedBy = *s.UpdatedBy
	}
	tw.AppendRow(table.Row{"updated_at", s.UpdatedAt.Format(time.RFC3339)})
	tw.AppendRow(table.Row{"updated_by", updatedBy})
	tw.Render()
}
