// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mailkeel/mailkeel/classifier"
	"github.com/mailkeel/mailkeel/classifier/spamfilter"
	"github.com/mailkeel/mailkeel/classifier/tagger"
	"github.com/mailkeel/mailkeel/config"
	"github.com/mailkeel/mailkeel/domain"
	"github.com/mailkeel/mailkeel/gmailprovider"
	"github.com/mailkeel/mailkeel/imapprovider"
	"github.com/mailkeel/mailkeel/log"
	"github.com/mailkeel/mailkeel/persistence"
	"github.com/mailkeel/mailkeel/queue"
	"github.com/mailkeel/mailkeel/syncer"

	"github.com/sirupsen/logrus"
)

const (
	mapperTTL     = 10 * time.Minute
	poolIdleAfter = 5 * time.Minute
)

func main() {
	configFile := flag.String("config", "mailkeel.toml", "path to the config file")
	flag.Parse()

	log.InitLogging("info")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig(*configFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	concurrentClassifier, err := newClassifier(conf)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start classifier connector")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	folderMapper := imapprovider.NewFolderMapper(mapperTTL)
	pool := imapprovider.NewPool(poolIdleAfter, folderMapper.Invalidate)
	defer pool.Close()
	labelMapper := gmailprovider.NewLabelMapper(mapperTTL)

	accounts := conf.Accounts()
	providers := map[string]domain.Provider{}
	imapProviders := map[string]*imapprovider.Provider{}
	for i, accountConf := range conf.Account {
		account := accounts[i]
		switch account.Kind {
		case domain.KindImap:
			provider := imapprovider.NewProvider(imapprovider.Settings{
				Account:  account,
				Server:   accountConf.ImapHost,
				User:     accountConf.User,
				Password: accountConf.Password,
				SmtpHost: accountConf.SmtpHost,
			}, pool, folderMapper)
			providers[account.Id] = provider
			imapProviders[account.Id] = provider
		case domain.KindGmail:
			source, err := gmailprovider.FileTokenSource(ctx, accountConf.ClientId, accountConf.ClientSecret, accountConf.TokenFile)
			if err != nil {
				logger.WithField("error", err).Fatal("Could not load oauth token")
			}
			provider, err := gmailprovider.NewProvider(ctx, gmailprovider.Settings{Account: account, TokenSource: source}, labelMapper)
			if err != nil {
				logger.WithField("error", err).Fatal("Could not start gmail connector")
			}
			providers[account.Id] = provider
		}
		defer providers[account.Id].Close()
	}

	// A failed probe is not fatal, the account keeps retrying through its
	// sync cycles while the others run.
	for _, account := range accounts {
		err = providers[account.Id].Authenticate(ctx)
		if err != nil {
			logger.WithFields(logrus.Fields{"account": account.Id, "error": err}).Warn("Could not authenticate account")
		}
	}

	configs := []syncer.ConfigFunc{
		syncer.Concurrency(conf.SyncConcurrency),
		syncer.DrainBatch(conf.DrainBatch),
	}
	if conf.FullSyncEvery > 0 {
		configs = append(configs, syncer.FullSyncEvery(conf.FullSyncEvery))
	}

	sy, err := syncer.NewSyncer(p, queue.NewQueue(p), concurrentClassifier, accounts, providers, configs...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start syncer")
	}

	// The service pointer is assigned before Run starts any watcher, the
	// notify closures only fire after that.
	var service *syncer.Service
	watchers := map[string]domain.Watcher{}
	for _, account := range accounts {
		provider, ok := imapProviders[account.Id]
		if !ok || !account.IdleEnabled {
			continue
		}
		accountId := account.Id
		watchers[accountId] = provider.NewWatcher(func() { service.Notify(accountId) })
	}
	service = syncer.NewService(sy, watchers)

	logger.WithFields(logrus.Fields{"accounts": len(accounts), "watchers": len(watchers)}).Info("Starting sync service")
	err = service.Run(ctx)
	if err != nil {
		logger.WithField("error", err).Fatal("Sync service failed")
	}
}

func newClassifier(conf *config.Config) (domain.ConcurrentClassifier, error) {
	if conf.TaggerEndpoint != "" {
		tg, err := tagger.NewTagger(conf.TaggerEndpoint, conf.TaggerPassword)
		if err != nil {
			return nil, err
		}

		return &classifier.GoRoutineClassifier{Classifier: tg}, nil
	}

	sf, err := spamfilter.NewSpamFilter(conf.SpamdHost)
	if err != nil {
		return nil, err
	}

	return &classifier.GoRoutineClassifier{Classifier: sf}, nil
}
