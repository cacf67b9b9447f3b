package commands

import (
	"edd-calculator/internal/domain/calculations"

	"github.com/spf13/cobra"
)

// Las fechas aceptan MMDDYYYY, YYYY-MM-DD o MM/DD/YYYY.

func lmpCmd(svc *calculations.Service, emit emitFunc) *cobra.Command {
	var lmp, ref string
	cmd := &cobra.Command{
		Use:   "lmp",
		Short: "EDD from LMP, plus gestational age on a reference date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := svc.FromLMP(ctxOf(cmd), "", calculations.LMPInput{LMP: lmp, ReferenceDate: ref})
			if err != nil {
				return err
			}
			return emit(cmd, c)
		},
	}
	cmd.Flags().StringVar(&lmp, "lmp", "", "Last menstrual period (MMDDYYYY)")
	cmd.Flags().StringVar(&ref, "ref", "", "Reference date (default today)")
	_ = cmd.MarkFlagRequired("lmp")
	return cmd
}

func gaDateCmd(svc *calculations.Service, emit emitFunc) *cobra.Command {
	var edd string
	var weeks, days int
	cmd := &cobra.Command{
		Use:   "ga-date",
		Short: "Date on which the pregnancy reaches a gestational age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := svc.DateForGA(ctxOf(cmd), "", calculations.GADateInput{EDD: edd, Weeks: weeks, Days: days})
			if err != nil {
				return err
			}
			return emit(cmd, c)
		},
	}
	cmd.Flags().StringVar(&edd, "edd", "", "Estimated due date")
	cmd.Flags().IntVarP(&weeks, "weeks", "w", 0, "Gestational age weeks (0-42)")
	cmd.Flags().IntVarP(&days, "days", "d", 0, "Gestational age days (0-6)")
	_ = cmd.MarkFlagRequired("edd")
	return cmd
}

func ultrasoundCmd(svc *calculations.Service, emit emitFunc) *cobra.Command {
	var usDate string
	var weeks, days int
	cmd := &cobra.Command{
		Use:     "ultrasound",
		Aliases: []string{"us"},
		Short:   "EDD from an ultrasound date and gestational age",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := svc.FromUltrasound(ctxOf(cmd), "", calculations.UltrasoundInput{UltrasoundDate: usDate, Weeks: weeks, Days: days})
			if err != nil {
				return err
			}
			return emit(cmd, c)
		},
	}
	cmd.Flags().StringVar(&usDate, "us-date", "", "Ultrasound date")
	cmd.Flags().IntVarP(&weeks, "weeks", "w", 0, "Ultrasound GA weeks (0-42)")
	cmd.Flags().IntVarP(&days, "days", "d", 0, "Ultrasound GA days (0-6)")
	_ = cmd.MarkFlagRequired("us-date")
	return cmd
}

func reconcileCmd(svc *calculations.Service, emit emitFunc) *cobra.Command {
	var lmp, usDate string
	var weeks, days int
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile LMP and ultrasound EDDs (ACOG thresholds)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := svc.Reconcile(ctxOf(cmd), "", calculations.ReconcileInput{
				LMP:            lmp,
				UltrasoundDate: usDate,
				Weeks:          weeks,
				Days:           days,
			})
			if err != nil {
				return err
			}
			return emit(cmd, c)
		},
	}
	cmd.Flags().StringVar(&lmp, "lmp", "", "Last menstrual period")
	cmd.Flags().StringVar(&usDate, "us-date", "", "Ultrasound date")
	cmd.Flags().IntVarP(&weeks, "weeks", "w", 0, "Ultrasound GA weeks (0-42)")
	cmd.Flags().IntVarP(&days, "days", "d", 0, "Ultrasound GA days (0-6)")
	_ = cmd.MarkFlagRequired("lmp")
	_ = cmd.MarkFlagRequired("us-date")
	return cmd
}
