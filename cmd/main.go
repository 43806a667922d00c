package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ninesong/wordcloud/api/route"
	"github.com/ninesong/wordcloud/bootstrap"
	"github.com/ninesong/wordcloud/domain"
)

const (
	ExitSuccess     = 0
	ExitInternal    = 1
	ExitUsage       = 2
	ExitInputRead   = 3
	ExitSelection   = 4
	ExitOutputWrite = 5
)

const usage = `usage:
  wordcloud <input> <output> <n>   write an HTML cloud of the n most frequent words
  wordcloud serve                  start the HTTP API`

const shutdownTimeout = 5 * time.Second

type invocation struct {
	serve      bool
	inputPath  string
	outputPath string
	wordLimit  int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	inv, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usage)
		return exitCode(err)
	}

	app, err := bootstrap.App("")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitInternal
	}
	defer app.CloseDBConnection()

	if inv.serve {
		err = serve(app)
	} else {
		err = generate(app, inv, stdout)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
	}
	return exitCode(err)
}

func parseArgs(args []string) (invocation, error) {
	if len(args) == 1 && args[0] == "serve" {
		return invocation{serve: true}, nil
	}
	if len(args) != 3 {
		return invocation{}, &domain.UsageError{
			Message: fmt.Sprintf("expected 3 arguments, got %d", len(args)),
		}
	}

	n, err := strconv.Atoi(args[2])
	if err != nil {
		return invocation{}, &domain.UsageError{Message: fmt.Sprintf("word count %q is not an integer", args[2]), Err: err}
	}
	if n < 1 {
		return invocation{}, &domain.UsageError{Message: fmt.Sprintf("word count %d", n), Err: domain.ErrInvalidLimit}
	}

	return invocation{inputPath: args[0], outputPath: args[1], wordLimit: n}, nil
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		usageErr *domain.UsageError
		inErr    *domain.InputReadError
		selErr   *domain.SelectionError
		outErr   *domain.OutputWriteError
	)
	switch {
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.As(err, &inErr):
		return ExitInputRead
	case errors.As(err, &selErr):
		return ExitSelection
	case errors.As(err, &outErr):
		return ExitOutputWrite
	default:
		return ExitInternal
	}
}

func generate(app *bootstrap.Application, inv invocation, stdout io.Writer) error {
	uc, err := app.NewWordCloudUsecase(app.WordCloudRepository(false))
	if err != nil {
		return err
	}

	if _, err = uc.GenerateWordCloud(context.Background(), inv.inputPath, inv.outputPath, inv.wordLimit); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Word Cloud Generated")
	return nil
}

func serve(app *bootstrap.Application) error {
	if app.Env.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	if err := route.Setup(app, engine); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    app.Env.ServerAddress,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("word cloud server listening on %s", app.Env.ServerAddress)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	// 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Println("word cloud server stopped")
	return nil
}
