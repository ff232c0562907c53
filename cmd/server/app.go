package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	historyModels "github.com/briclabs/evcoordinator-sub000/internal/history/models"
	historyPublisher "github.com/briclabs/evcoordinator-sub000/internal/history/publisher"
	historyService "github.com/briclabs/evcoordinator-sub000/internal/history/service"
	historyStore "github.com/briclabs/evcoordinator-sub000/internal/history/store"
	ledgerModels "github.com/briclabs/evcoordinator-sub000/internal/ledger/models"
	ledgerService "github.com/briclabs/evcoordinator-sub000/internal/ledger/service"
	ledgerStore "github.com/briclabs/evcoordinator-sub000/internal/ledger/store"
	"github.com/briclabs/evcoordinator-sub000/internal/platform/config"
	"github.com/briclabs/evcoordinator-sub000/internal/platform/database"
	"github.com/briclabs/evcoordinator-sub000/internal/platform/metrics"
	"github.com/briclabs/evcoordinator-sub000/internal/query"
	regModels "github.com/briclabs/evcoordinator-sub000/internal/registration/models"
	regService "github.com/briclabs/evcoordinator-sub000/internal/registration/service"
	regStore "github.com/briclabs/evcoordinator-sub000/internal/registration/store"
	"github.com/briclabs/evcoordinator-sub000/internal/registration/validation"
	"github.com/briclabs/evcoordinator-sub000/internal/repository"
	"github.com/briclabs/evcoordinator-sub000/internal/settings"
	httptransport "github.com/briclabs/evcoordinator-sub000/internal/transport/http"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/tx"
)

// app owns every long-lived resource so main can close them in one place.
type app struct {
	db      *sql.DB
	kafka   *historyPublisher.Kafka
	handler http.Handler
}

func (a *app) Close() error {
	if a.kafka != nil {
		a.kafka.Close()
	}
	return a.db.Close()
}

// build opens the database and wires stores, services, and the router.
func build(ctx context.Context, cfg config.Server, log *slog.Logger) (*app, error) {
	db, dialect, err := database.Open(ctx, cfg.DBDriver, cfg.DBDSN, database.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		return nil, err
	}
	a := &app{db: db}

	if cfg.MigrateOnStart {
		if err := database.Migrate(ctx, db, dialect); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewDBStatsCollector(db, cfg.DBDriver))
	m := metrics.New(reg)

	exec := query.NewExecutor(db, dialect, query.WithMaxPageSize(cfg.MaxPageSize))
	base := []repository.Option{repository.WithLogger(log), repository.WithMetrics(m)}

	historyRows := historyStore.New(exec, base...)
	recorderOpts := []historyService.RecorderOption{historyService.WithRecorderLogger(log)}
	if cfg.KafkaEnabled() {
		sink, err := historyPublisher.NewKafka(cfg.KafkaBrokers, cfg.HistoryTopic, nil, historyPublisher.WithLogger(log))
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("history publisher: %w", err)
		}
		a.kafka = sink
		ensureCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := sink.EnsureTopic(ensureCtx, 3, 1); err != nil {
			log.WarnContext(ctx, "history topic not ensured", "topic", cfg.HistoryTopic, "error", err)
		}
		cancel()
		recorderOpts = append(recorderOpts, historyService.WithSink(sink))
	}
	recorder := historyService.NewRecorder(historyRows, recorderOpts...)
	audited := append(base[:len(base):len(base)], repository.WithAuditor(recorder), repository.WithStrictAudit(cfg.StrictAudit))

	participants := regStore.NewParticipants(exec, base...)
	associations := regStore.NewAssociations(exec, base...)
	registrations := regStore.NewRegistrations(exec, base...)
	links := regStore.NewLinks(exec, base...)
	events := regStore.NewEvents(exec, base...)
	payments := ledgerStore.NewPayments(exec, audited...)
	transactions := ledgerStore.NewTransactions(exec, audited...)
	configurations := settings.NewStore(exec, audited...)

	validator := validation.New(nil)
	packetOpts := []regService.Option{
		regService.WithLogger(log),
		regService.WithMetrics(m),
		regService.WithValidator(validator),
	}
	if cfg.AtomicPackets {
		packetOpts = append(packetOpts, regService.WithTxRunner(tx.NewRunner(db, cfg.TxTimeout)))
	}
	packets, err := regService.New(participants, associations, registrations, links, packetOpts...)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	eventSvc, err := regService.NewEventService(events, validator, log)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	ledger, err := ledgerService.New(payments, transactions, ledgerService.WithLogger(log))
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	settingsSvc, err := settings.NewService(configurations)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	handlerOpts := []httptransport.Option{httptransport.WithLogger(log)}
	if cfg.CheckActors {
		handlerOpts = append(handlerOpts, httptransport.WithActorChecker(participantActors{participants}))
	}
	h, err := httptransport.New(httptransport.Services{
		Packets:  packets,
		Events:   eventSvc,
		Ledger:   ledger,
		Settings: settingsSvc,
		History:  historyService.New(historyRows),
		Entities: map[string]httptransport.EntityReader{
			regStore.ParticipantTable:             httptransport.Readable[regModels.Participant](participants),
			regStore.AssociationTable:             httptransport.Readable[regModels.Association](associations),
			regStore.RegistrationTable:            httptransport.Readable[regModels.Registration](registrations),
			regStore.RegistrationAssociationTable: httptransport.Readable[regModels.RegistrationAssociation](links),
			regStore.EventInfoTable:               httptransport.Readable[regModels.EventInfo](events),
			ledgerStore.PaymentTable:              httptransport.Readable[ledgerModels.Payment](payments),
			ledgerStore.TransactionTable:          httptransport.Readable[ledgerModels.Transaction](transactions),
			settings.Table:                        httptransport.Readable[settings.Configuration](configurations),
			historyStore.Table:                    httptransport.Readable[historyModels.Record](historyRows),
		},
	}, handlerOpts...)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.handler = httptransport.NewRouter(h, httptransport.RouterConfig{
		Logger:         log,
		Metrics:        m,
		Gatherer:       reg,
		DB:             db,
		RequestTimeout: cfg.RequestTimeout,
	})
	return a, nil
}

// participantActors confirms that an actor id names a recorded participant.
type participantActors struct {
	participants *regStore.Participants
}

func (p participantActors) ActorExists(ctx context.Context, actorID int64) (bool, error) {
	_, found, err := p.participants.FetchByID(ctx, actorID)
	if err != nil {
		return false, fmt.Errorf("look up actor: %w", err)
	}
	return found, nil
}
