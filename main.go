package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sealor/searchbot/pkg/chat"
	"github.com/sealor/searchbot/pkg/config"
	"github.com/sealor/searchbot/pkg/conversation"
	"github.com/sealor/searchbot/pkg/llm"
	"github.com/sealor/searchbot/pkg/observe"
	"github.com/sealor/searchbot/pkg/persistence"
	"github.com/sealor/searchbot/pkg/persistence/postgres"
	"github.com/sealor/searchbot/pkg/search"
	"github.com/sealor/searchbot/pkg/server"
	"github.com/sealor/searchbot/pkg/tooling"
	"golang.org/x/term"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file")
	apiURL := flag.String("api", "", "URL for the OpenAI API endpoint")
	model := flag.String("model", "", "Technical name of the LLM")
	userMessage := flag.String("message", "", "User message")
	systemMessage := flag.String("system", "", "System message")
	reasoning := flag.String("reasoning", "", "Level of reasoning (e.g. none, low, medium, high)")
	sessionFile := flag.String("session-file", "", "Use this file to save and resume chat sessions")
	listen := flag.String("listen", "", "Serve the chat room API on this address instead of the terminal")
	activeLog := flag.Bool("log", false, "Activate logging")

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	if *apiURL != "" {
		cfg.Model.BaseURL = *apiURL
	}
	if *model != "" {
		cfg.Model.Name = *model
	}
	if *reasoning != "" {
		cfg.Model.Reasoning = *reasoning
	}

	if *listen != "" {
		cfg.Server.Listen = *listen
		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		if err := serve(cfg, logger, *activeLog); err != nil {
			log.Fatalln("ERROR:", err)
		}
		return
	}

	level := slog.LevelWarn
	if *activeLog {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	driver := newDriver(cfg, observe.Logger(logger, slog.LevelDebug), logger, *activeLog)

	conv := &chat.Conversation{}
	if *sessionFile != "" {
		conv, err = persistence.TryToResumeSession(*sessionFile)
		if err != nil {
			log.Fatalln("ERROR:", err)
		}
	}
	if *systemMessage != "" {
		if len(conv.Messages) > 0 && conv.Messages[0].Role == chat.RoleSystem {
			conv.Messages[0].Content = *systemMessage
		} else {
			conv.Messages = append([]chat.Message{chat.SystemMessage(*systemMessage)}, conv.Messages...)
		}
	}

	t := term.NewTerminal(os.Stdin, "> ")

	for {
		prompt := *userMessage
		if len(*userMessage) == 0 {
			fd := int(os.Stdin.Fd())
			oldState, err := term.MakeRaw(fd)
			if err != nil {
				fmt.Fprintln(t, "Fatal:", err)
				break
			}

			width, height, err := term.GetSize(fd)
			if err != nil {
				fmt.Fprintln(t, "Fatal:", err)
				break
			}
			t.SetSize(width, height)

			prompt, err = t.ReadLine()
			restoreErr := term.Restore(fd, oldState)

			if err != nil {
				if err != io.EOF {
					fmt.Fprintln(t, "Fatal:", err)
				}
				break
			}
			if restoreErr != nil {
				fmt.Fprintln(t, "Fatal:", restoreErr)
				break
			}
		}

		if prompt == "" {
			continue
		}

		conv.Append(chat.UserMessage(prompt))
		runPrompt(t, driver, conv)

		if *sessionFile != "" {
			if err := persistence.SaveSession(*sessionFile, cfg.Model.Name, conv); err != nil {
				log.Fatalln("ERROR:", err)
			}
		}

		if len(*userMessage) > 0 {
			break
		}
	}
}

func runPrompt(w io.Writer, driver *conversation.Driver, conv *chat.Conversation) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintln(w, driver.Run(ctx, conv))
	fmt.Fprintln(w, "")
}

// newDriver wires the model client, the search tool and the driver. A
// model client that cannot be configured leaves the driver answering with
// the not-configured reply.
func newDriver(cfg config.Config, observer observe.Observer, logger *slog.Logger, debug bool) *conversation.Driver {
	var modelClient conversation.ModelClient
	var opts []llm.Option
	if debug {
		opts = append(opts, llm.WithDebugLog())
	}
	if client, err := llm.NewOpenAI(cfg.Model, opts...); err != nil {
		logger.Error("model client not configured", slog.String("error", err.Error()))
	} else {
		modelClient = client
	}

	if cfg.Search.APIKey == "" {
		logger.Warn("search client not configured", slog.String("field", "search.api_key"))
	}
	searcher := search.New(cfg.Search.APIKey,
		search.WithEndpoint(cfg.Search.Endpoint),
		search.WithHTTPClient(&http.Client{Timeout: cfg.Search.Timeout}),
		search.WithObserver(observer))

	registry, err := tooling.NewRegistry(tooling.NewWebSearch(searcher, cfg.Search.Count))
	if err != nil {
		log.Fatalln("ERROR:", err)
	}

	return conversation.NewDriver(modelClient, registry,
		conversation.WithObserver(observer),
		conversation.WithMaxAttempts(cfg.Model.MaxAttempts),
		conversation.WithAttemptTimeout(cfg.Model.AttemptTimeout),
		conversation.WithBackoff(conversation.Backoff{
			Initial: cfg.Model.Backoff.Initial,
			Max:     cfg.Model.Backoff.Max,
			Jitter:  cfg.Model.Backoff.Jitter,
		}))
}

func openStore(ctx context.Context, cfg config.Storage) (persistence.Store, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if cfg.Driver == "postgres" {
		store, err := postgres.Connect(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
	store, err := persistence.NewFileStore(cfg.Dir)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}

func serve(cfg config.Config, logger *slog.Logger, debug bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("could not open storage: %w", err)
	}
	defer closeStore()

	driver := newDriver(cfg, observe.Logger(logger, slog.LevelInfo), logger, debug)
	service := server.NewService(store, driver, cfg.Server.BotName, cfg.Server.HistoryWindow)
	router := server.NewRouter(server.NewHandler(service))

	srv := &http.Server{Addr: cfg.Server.Listen, Handler: router}
	go func() {
		<-ctx.Done()
		shutdown(srv, logger, 10*time.Second)
	}()

	logger.Info("chat room server starting", slog.String("addr", cfg.Server.Listen), slog.String("bot", cfg.Server.BotName))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// shutdown stops srv within timeout and logs when it cannot.
func shutdown(srv shutdowner, logger *slog.Logger, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
}
