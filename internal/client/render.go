package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-fin-sync/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(24)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// statusView is everything the status command prints.
type statusView struct {
	User    string
	Status  models.SyncStatus
	Metrics models.SyncMetrics
	Stats   models.SyncStats
}

func renderStatus(v statusView) string {
	status := []string{
		row("Account", valueOrNA(v.User)),
		row("Device", valueOrNA(v.Stats.DeviceID)),
		row("Network", string(v.Status.NetworkStatus)),
		row("Last sync", formatLastSync(v.Stats)),
		row("Pending changes", fmt.Sprint(v.Stats.PendingChanges)),
		row("Queued operations", fmt.Sprint(v.Status.QueuedOperations)),
		row("Transactions", fmt.Sprint(v.Stats.Transactions)),
		row("Categories", fmt.Sprint(v.Stats.Categories)),
		row("Open circuit breakers", fmt.Sprint(v.Stats.ActiveBreakers)),
	}
	if v.Status.LastError != "" {
		status = append(status, row("Last error", errorStyle.Render(v.Status.LastError)))
	}

	m := v.Metrics
	metrics := []string{
		row("Total syncs", fmt.Sprint(m.TotalSyncs)),
		row("Successful", okStyle.Render(fmt.Sprint(m.SuccessfulSyncs))),
		row("Failed", fmt.Sprint(m.FailedSyncs)),
		row("Average sync time", fmt.Sprintf("%.0f ms", m.AverageSyncTime)),
		row("Items synced", fmt.Sprint(m.TotalItemsSynced)),
		row("Conflicts resolved", fmt.Sprint(m.TotalConflictsResolved)),
		row("Bytes transferred", fmt.Sprint(m.TotalBytesTransferred)),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		section("SYNC STATUS", status),
		section("SYNC METRICS", metrics),
	)
}

func renderResult(r models.SyncResult) string {
	if !r.Success {
		return section("SYNC FAILED", []string{
			row("Error", errorStyle.Render(r.Error)),
			row("Duration", r.SyncTime.Round(time.Millisecond).String()),
		})
	}

	return section("SYNC COMPLETED", []string{
		row("Items synced", fmt.Sprint(r.ItemsSynced)),
		row("Conflicts resolved", fmt.Sprint(r.ConflictsResolved)),
		row("Bytes transferred", fmt.Sprint(r.BytesTransferred)),
		row("Duration", r.SyncTime.Round(time.Millisecond).String()),
	})
}

// renderStatusLine is the one-line form printed by the run command on
// every status change.
func renderStatusLine(s models.SyncStatus) string {
	state := "idle"
	if s.IsSyncing {
		state = "syncing"
	}
	if !s.IsOnline {
		state = "offline"
	}

	line := fmt.Sprintf("[%s] network=%s pending=%d queued=%d", state, s.NetworkStatus, s.PendingItems, s.QueuedOperations)
	if s.LastError != "" {
		line += " " + errorStyle.Render("error="+s.LastError)
	}
	return line
}

func renderTransactions(items []models.Transaction) string {
	if len(items) == 0 {
		return "no transactions"
	}

	rows := make([]string, 0, len(items))
	for _, t := range items {
		amount := fmt.Sprintf("%.2f", t.Amount)
		if t.Type == models.TransactionExpense {
			amount = "-" + amount
		}
		rows = append(rows, fmt.Sprintf("%s  %s  %10s  %-12s %s", t.ID, t.Date, amount, t.Category, t.Description))
	}
	return section("TRANSACTIONS", rows)
}

func section(title string, rows []string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return boxStyle.Render(titleStyle.Render(title) + "\n" + body)
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func formatLastSync(s models.SyncStats) string {
	if s.NeverSynced {
		return "never"
	}
	return s.LastSyncTime.Local().Format(time.DateTime)
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
