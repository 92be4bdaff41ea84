package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/J-Rios/boe-borme-downloader/internal/buildinfo"
	"github.com/J-Rios/boe-borme-downloader/internal/domain"
	"github.com/J-Rios/boe-borme-downloader/internal/infra/filestore"
	"github.com/J-Rios/boe-borme-downloader/internal/infra/httpclient"
	"github.com/J-Rios/boe-borme-downloader/internal/infra/logger"
	"github.com/J-Rios/boe-borme-downloader/internal/infra/summaryhtml"
	"github.com/J-Rios/boe-borme-downloader/internal/infra/yamlconfig"
	"github.com/J-Rios/boe-borme-downloader/internal/usecase"
)

func Execute() {
	// SIGINT, SIGTERM and SIGUSR1 cancel the run context; the mirror loop
	// observes it between issuers and items.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var date string
	var kind string
	var outDir string
	var cfgPath string
	var debug bool

	cmd := &cobra.Command{
		Use:          "boedl",
		Short:        "Mirror a day's BOE/BORME bulletin documents into a local directory tree",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMirror(cmd.Context(), cmd.OutOrStdout(), mirrorArgs{
				date:    date,
				kind:    kind,
				outDir:  outDir,
				cfgPath: cfgPath,
				debug:   debug,
			})
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date of the bulletin to mirror (format YYYYMMDD)")
	cmd.Flags().StringVarP(&kind, "type", "t", "", "Type of bulletin to request (BOE or BORME)")
	cmd.Flags().StringVarP(&outDir, "outdir", "o", "", "Output directory path to store the downloaded documents")
	cmd.Flags().StringVar(&cfgPath, "config", "", "Config file path (default: boedl.yaml if present)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable verbose logging")

	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("outdir")

	cmd.SetVersionTemplate("{{.Version}}\n")

	return cmd
}

type mirrorArgs struct {
	date    string
	kind    string
	outDir  string
	cfgPath string
	debug   bool
}

func runMirror(ctx context.Context, out io.Writer, args mirrorArgs) error {
	logger.Setup(logger.Config{Debug: args.debug})
	log := logger.L().With("run_id", uuid.NewString())

	// Input validation happens before any network call.
	date, err := domain.ParseDate(args.date)
	if err != nil {
		log.Error("input.invalid_date", "date", args.date)
		return err
	}

	kind, err := domain.ParseKind(args.kind)
	if err != nil {
		log.Error("input.invalid_type", "type", args.kind)
		return err
	}

	cfg, err := yamlconfig.Load(args.cfgPath)
	if err != nil {
		log.Error("config.load_failed", "err", err)
		return err
	}

	req := domain.BulletinRequest{Date: date, Kind: kind}
	log.Info("bulletin.requesting",
		"kind", string(kind),
		"date", fmt.Sprintf("%s/%s/%s", date.Year, date.Month, date.Day))

	client := httpclient.New(cfg.HTTP)
	resolver := summaryhtml.NewResolver(client, cfg.BaseURL, log)
	store := filestore.NewStore(client, log, filestore.WithChunkSize(cfg.Mirror.ChunkSize))

	uc := usecase.NewMirrorBulletin(resolver, store, log, cfg.BaseURL, args.outDir)
	res, err := uc.Execute(ctx, req)
	if err != nil {
		log.Error("mirror.aborted", "err", err)
		return err
	}

	log.Info("mirror.completed", "downloaded", res.Downloaded, "failed", res.Failed)
	fmt.Fprintf(out, "Num files downloaded: %d\n", res.Downloaded)
	fmt.Fprintln(out, "Operation completed")
	return nil
}
