package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"shopdesk/internal/agent"
	"shopdesk/internal/catalog"
	"shopdesk/internal/config"
	"shopdesk/internal/docstore"
	"shopdesk/internal/explorer"
	"shopdesk/internal/helpdesk"
	"shopdesk/internal/mockdata"
	"shopdesk/internal/summarizer"
	"shopdesk/internal/tui"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:           "shopdesk",
		Usage:          "document-store AI search demo: product explorer, helpdesk browser and shopping agent",
		DefaultCommand: "tui",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to YAML config file (default: ./config.yaml, then ~/.config/shopdesk/config.yaml)"},
			&cli.StringFlag{Name: "lang", Value: "en", Usage: "language for localized product names (en, es, fr, de, it)"},
		},
		Commands: []*cli.Command{
			{
				Name:   "tui",
				Usage:  "run the full-screen terminal UI",
				Action: runTUI,
			},
			{
				Name:      "ask",
				Usage:     "send one utterance to the shopping agent and print the reply",
				ArgsUsage: "<utterance>",
				Action:    runAsk,
			},
			{
				Name:      "search",
				Usage:     "run one product search and print matches",
				ArgsUsage: "<query>",
				Action:    runSearch,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type services struct {
	cfg      *config.AppConfig
	log      *logrus.Logger
	catalog  *catalog.Catalog
	agent    *agent.Agent
	explorer *explorer.Service
	helpdesk *helpdesk.Service
}

func setup(c *cli.Context) (*services, error) {
	var cfg *config.AppConfig
	var err error
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, _, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg.Log)

	store := docstore.NewClient(docstore.Config{
		URL:        cfg.DocStore.URL,
		Database:   cfg.DocStore.Database,
		APIKeyEnv:  cfg.DocStore.APIKeyEnv,
		Similarity: cfg.DocStore.Similarity,
		Timeout:    time.Duration(cfg.DocStore.TimeoutSecs) * time.Second,
	})

	cat := catalog.New(mockdata.Products())
	sum := summarizer.NewFrequencySummarizer()

	return &services{
		cfg:      cfg,
		log:      log,
		catalog:  cat,
		agent:    agent.New(cat, agent.Options{CustomerName: cfg.Agent.CustomerName, Log: log}),
		explorer: explorer.New(store, mockdata.Products(), log),
		helpdesk: helpdesk.New(store, mockdata.Tickets(), sum, cfg.Summary.MaxSentences, log),
	}, nil
}

func runTUI(c *cli.Context) error {
	svc, err := setup(c)
	if err != nil {
		return err
	}
	svc.log.WithField("docstore", svc.cfg.DocStore.URL).Info("starting UI")
	m := tui.New(tui.Deps{
		Explorer:   svc.explorer,
		Helpdesk:   svc.helpdesk,
		Agent:      svc.agent,
		ReplyDelay: time.Duration(svc.cfg.Agent.ReplyDelayMs) * time.Millisecond,
		Language:   c.String("lang"),
	})
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func runAsk(c *cli.Context) error {
	utterance := c.Args().First()
	if utterance == "" {
		return cli.Exit("usage: shopdesk ask \"<utterance>\"", 1)
	}
	svc, err := setup(c)
	if err != nil {
		return err
	}
	_, reply := svc.agent.Handle(agent.Session{}, utterance)
	fmt.Println(reply.Content)
	return nil
}

func runSearch(c *cli.Context) error {
	query := c.Args().First()
	if query == "" {
		return cli.Exit("usage: shopdesk search \"<query>\"", 1)
	}
	svc, err := setup(c)
	if err != nil {
		return err
	}
	products := svc.explorer.Search(query, c.String("lang"))
	if len(products) == 0 {
		fmt.Println("No products found.")
		return nil
	}
	for _, p := range products {
		fmt.Printf("%s [%s] $%s - stock %d\n", p.LocalizedName(c.String("lang")), p.Category, p.Price, p.StockQuantity)
	}
	return nil
}

// newLogger writes JSON logs to the configured file; stdout is reserved
// for the UI. Logging is best-effort, a bad path just discards output.
func newLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(file)
	return log
}
