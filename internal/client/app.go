package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/adapter"
	"github.com/MKhiriev/go-fin-sync/internal/config"
	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/retry"
	"github.com/MKhiriev/go-fin-sync/internal/service"
	"github.com/MKhiriev/go-fin-sync/internal/store"
	"github.com/MKhiriev/go-fin-sync/internal/workers"
	"github.com/MKhiriev/go-fin-sync/models"
)

const usage = `usage: fin-sync [flags] <command> [args]

commands:
  token <jwt>                                   store the access token
  add <income|expense> <amount> <category> <description>
                                                record a transaction locally
  list                                          list local transactions
  delete <id>                                   delete a local transaction
  sync                                          run one sync cycle
  status                                        print sync status and metrics
  resync                                        drop pending changes and resync everything
  run                                           auto-sync until interrupted`

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices

	out io.Writer
	now func() time.Time
	log *logger.Logger
}

// NewApp opens the local store and wires the sync services. The retry
// executor is shared by the adapter and the orchestrator so that circuit
// breaker state is common to both.
func NewApp(ctx context.Context, cfg *config.ClientConfig, out io.Writer, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	executor := retry.NewExecutor(log, retry.WithDefaults(retryDefaults(cfg.Sync)))
	deltaAdapter := adapter.NewHTTPDeltaAdapter(cfg.Adapter, cfg.App, executor, log)

	return &App{
		storages: storages,
		services: service.NewClientServices(storages, deltaAdapter, executor, cfg.Sync, log),
		out:      out,
		now:      time.Now,
		log:      log,
	}, nil
}

func retryDefaults(s config.ClientSync) retry.Config {
	c := retry.DefaultConfig()
	c.MaxRetries = s.MaxRetries
	c.InitialDelay = s.RetryDelay
	return c
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return ErrUnknownCommand
	}

	command, rest := args[0], args[1:]
	switch command {
	case "token":
		return a.setToken(ctx, rest)
	case "add":
		return a.addTransaction(ctx, rest)
	case "list":
		return a.listTransactions(ctx)
	case "delete":
		return a.deleteTransaction(ctx, rest)
	case "sync":
		return a.syncOnce(ctx)
	case "status":
		return a.printStatus(ctx)
	case "resync":
		return a.resync(ctx)
	case "run":
		return a.runLoop(ctx)
	default:
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// Close implements [Client].
func (a *App) Close() error {
	return errors.Join(a.services.Orchestrator.Close(), a.storages.Close())
}

func (a *App) setToken(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return ErrMissingToken
	}
	token := args[0]

	if err := a.services.AuthService.SetToken(ctx, token); err != nil {
		return err
	}

	user, err := a.services.AuthService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "token stored for user %d\n", user.ID)
	return nil
}

// addTransaction goes through the orchestrator queue so that it never
// interleaves with another queued mutation.
func (a *App) addTransaction(ctx context.Context, args []string) error {
	if len(args) < 4 {
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("%w: add needs type, amount, category and description", service.ErrInvalidDataProvided)
	}

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: amount %q: %w", service.ErrInvalidDataProvided, args[1], err)
	}

	tx := models.Transaction{
		Type:        models.TransactionType(args[0]),
		Amount:      amount,
		Category:    args[2],
		Description: strings.Join(args[3:], " "),
		Date:        a.now().Format(time.DateOnly),
	}

	var (
		created models.Transaction
		opErr   error
	)
	a.services.Orchestrator.QueueOperation(ctx, func(ctx context.Context) error {
		created, opErr = a.services.LedgerService.CreateTransaction(ctx, tx)
		return opErr
	})
	if opErr != nil {
		return opErr
	}

	fmt.Fprintf(a.out, "transaction %s recorded\n", created.ID)
	return nil
}

func (a *App) listTransactions(ctx context.Context) error {
	items, err := a.services.LedgerService.ListTransactions(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderTransactions(items))
	return nil
}

func (a *App) deleteTransaction(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("%w: transaction id is required", service.ErrInvalidDataProvided)
	}
	id := args[0]

	if err := a.services.LedgerService.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "transaction %s deleted\n", id)
	return nil
}

func (a *App) syncOnce(ctx context.Context) error {
	if err := a.services.Orchestrator.Initialize(ctx); err != nil {
		return err
	}

	return a.syncAndReport(ctx)
}

func (a *App) syncAndReport(ctx context.Context) error {
	result, err := a.services.Orchestrator.Sync(ctx, true)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderResult(result))
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrSyncFailed, result.Error)
	}
	return nil
}

func (a *App) printStatus(ctx context.Context) error {
	o := a.services.Orchestrator
	if err := o.Initialize(ctx); err != nil {
		return err
	}

	stats, err := a.services.Syncer.SyncStats(ctx)
	if err != nil {
		return err
	}

	view := statusView{
		Status:  o.Status(),
		Metrics: o.Metrics(),
		Stats:   stats,
	}
	if user, err := a.services.AuthService.CurrentUser(ctx); err == nil {
		view.User = fmt.Sprintf("user %d", user.ID)
	}

	fmt.Fprintln(a.out, renderStatus(view))
	return nil
}

func (a *App) resync(ctx context.Context) error {
	o := a.services.Orchestrator
	if err := o.Initialize(ctx); err != nil {
		return err
	}
	if err := o.ForceFullResync(ctx); err != nil {
		return err
	}

	return a.syncAndReport(ctx)
}

// runLoop syncs once, then leaves auto-sync and the network monitor running
// and prints every status change until ctx is cancelled.
func (a *App) runLoop(ctx context.Context) error {
	o := a.services.Orchestrator
	if err := o.Initialize(ctx); err != nil {
		return err
	}

	updates, unsubscribe := o.Subscribe(16)
	defer unsubscribe()

	w := workers.NewWorkers(
		workers.Func(func(ctx context.Context) error {
			if err := a.syncAndReport(ctx); err != nil {
				a.log.Warn().Err(err).Msg("initial sync failed")
			}
			<-ctx.Done()
			return nil
		}),
		workers.Func(func(ctx context.Context) error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case status, ok := <-updates:
					if !ok {
						return nil
					}
					fmt.Fprintln(a.out, renderStatusLine(status))
				}
			}
		}),
	)

	return w.Run(ctx)
}
