// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/RavuAlHemio/cco7/internal/cco7/config"
	"github.com/RavuAlHemio/cco7/internal/cco7/fileutil"
	"github.com/RavuAlHemio/cco7/internal/cco7/interfaces"
	"github.com/RavuAlHemio/cco7/internal/cco7/logging"
	"github.com/RavuAlHemio/cco7/internal/cco7/models"
	"github.com/RavuAlHemio/cco7/internal/cco7/scanner"
	"github.com/RavuAlHemio/cco7/pkg/type7"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config  *config.Config
	logger  hclog.Logger
	fs      interfaces.FileSystem
	scanner interfaces.ConfigScanner
	out     io.Writer
	outMu   sync.Mutex
	// テスト用にソルトの選び方を差し替えられるようにする
	suggestSalt func() int
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Scanner    interfaces.ConfigScanner
	Logger     hclog.Logger
	Output     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	configScanner := opts.Scanner
	if configScanner == nil {
		configScanner = scanner.NewConfigScanner()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger("cco7", cfg.EffectiveLogLevel(), cfg.JSONLog, nil)
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return &App{
		config:      cfg,
		logger:      logger,
		fs:          fs,
		scanner:     configScanner,
		out:         out,
		suggestSalt: type7.SuggestSalt,
	}
}

// Decode は type-7 パスワードを復号して結果を出力します。
// 失敗した入力があっても残りの処理は続け、最後に ErrDecodeFailed を返します。
func (a *App) Decode(ctx context.Context, inputs []string) ([]models.Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	results := make([]models.Result, 0, len(inputs))
	failed := 0
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := models.Result{Input: input}
		plain, err := type7.Decode(input)
		if err != nil {
			a.logger.Debug("復号に失敗しました", "input", input, "error", err)
			result.Error = err.Error()
			failed++
		} else {
			a.logger.Debug("復号しました", "input", input)
			result.Output = plain
		}
		results = append(results, result)
	}

	if err := a.emitResults(results); err != nil {
		return results, err
	}
	if failed > 0 {
		return results, fmt.Errorf("%w: %d/%d 件", ErrDecodeFailed, failed, len(inputs))
	}
	return results, nil
}

// Encode は平文を type-7 パスワードに符号化して結果を出力します。
// ソルトが指定されていない場合は入力ごとにランダムに選びます。
func (a *App) Encode(ctx context.Context, inputs []string) ([]models.Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	results := make([]models.Result, 0, len(inputs))
	var firstErr error
	failed := 0
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		salt := a.config.Salt
		if salt == config.RandomSalt {
			salt = a.suggestSalt()
			a.logger.Info("ソルトを自動で選びました", "salt", salt)
		}

		result := models.Result{Input: input, Salt: &salt}
		encoded, err := a.encodeOne(input, salt)
		if err != nil {
			a.logger.Debug("符号化に失敗しました", "salt", salt, "error", err)
			result.Error = err.Error()
			failed++
			if firstErr == nil {
				firstErr = err
			}
		} else {
			result.Output = encoded
		}
		results = append(results, result)
	}

	if err := a.emitResults(results); err != nil {
		return results, err
	}
	if failed > 0 {
		return results, fmt.Errorf("%w: %d/%d 件: %w", ErrEncodeFailed, failed, len(inputs), firstErr)
	}
	return results, nil
}

func (a *App) encodeOne(input string, salt int) (string, error) {
	encoded, err := type7.Encode(input, salt)
	if err != nil {
		return "", err
	}

	if a.config.Verify {
		decoded, err := type7.Decode(encoded)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrVerifyFailed, err)
		}
		if decoded != input {
			return "", ErrVerifyFailed
		}
		a.logger.Debug("符号化の結果を確認しました", "type7", encoded)
	}
	return encoded, nil
}

// scanJob は scan の 1 ファイル分の処理を表します
type scanJob struct {
	index int
	path  string
}

// Scan は機器設定ファイルから type-7 パスワードを探して結果を出力します。
// ファイルは Workers 個の goroutine で並列に処理し、結果は入力順に並べます。
func (a *App) Scan(ctx context.Context, paths []string) ([]*models.Report, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	numWorkers := a.config.Workers
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}

	reports := make([]*models.Report, len(paths))
	jobs := make(chan scanJob, numWorkers*2)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				reports[job.index] = a.scanFile(ctx, job.path)
			}
		}()
	}

	// ジョブを投入
	for i, path := range paths {
		jobs <- scanJob{index: i, path: path}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return reports, err
	}

	if err := a.emitReports(reports); err != nil {
		return reports, err
	}

	failed := 0
	for _, report := range reports {
		if report.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return reports, fmt.Errorf("%w: %d/%d 件", ErrScanFailed, failed, len(paths))
	}
	return reports, nil
}

// scanFile は 1 ファイルを読み込んで解析します
func (a *App) scanFile(ctx context.Context, path string) *models.Report {
	report := &models.Report{Path: path, Findings: []*models.Finding{}}

	// コンテキストのキャンセルチェック
	if err := ctx.Err(); err != nil {
		report.Error = err.Error()
		return report
	}

	text, err := fileutil.ReadText(a.fs, path, a.config.Encoding)
	if err != nil {
		a.logger.Warn("ファイルを読み込めませんでした", "path", path, "error", err)
		report.Error = err.Error()
		return report
	}

	findings, err := a.scanner.Scan(text)
	if err != nil {
		a.logger.Warn("ファイルを解析できませんでした", "path", path, "error", err)
		report.Error = err.Error()
		return report
	}
	if findings != nil {
		report.Findings = findings
	}

	a.logger.Debug("ファイルを解析しました", "path", path, "findings", len(report.Findings))
	return report
}

// emitResults は decode / encode の結果を出力します
func (a *App) emitResults(results []models.Result) error {
	if a.config.JSONOutput {
		return a.emit(results, nil)
	}
	return a.emit(nil, func(builder *strings.Builder) {
		for _, r := range results {
			if r.Failed() {
				fmt.Fprintf(builder, "%s\tError: %s\n", r.Input, r.Error)
			} else {
				fmt.Fprintf(builder, "%s\t%s\n", r.Input, r.Output)
			}
		}
	})
}

// emitReports は scan の結果を出力します
func (a *App) emitReports(reports []*models.Report) error {
	if a.config.JSONOutput {
		return a.emit(reports, nil)
	}
	return a.emit(nil, func(builder *strings.Builder) {
		for _, report := range reports {
			builder.WriteString(FormatReport(report))
		}
	})
}

// emit は JSON またはテキストを生成し、標準出力と出力ファイルに書き込みます
func (a *App) emit(v any, writeText func(*strings.Builder)) error {
	var builder strings.Builder
	if writeText != nil {
		writeText(&builder)
	} else {
		encoder := json.NewEncoder(&builder)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return err
		}
	}
	output := builder.String()

	if a.config.OutputPath != "" {
		if err := fileutil.SaveText(a.fs, a.config.OutputPath, output, a.config.Encoding); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveFile, err)
		}
		a.logger.Info("結果を保存しました", "path", a.config.OutputPath)
	}

	if !a.config.Quiet {
		a.outMu.Lock()
		defer a.outMu.Unlock()
		if _, err := io.WriteString(a.out, output); err != nil {
			return err
		}
	}
	return nil
}

// FormatReport は scan の結果を表形式のテキストにします
func FormatReport(report *models.Report) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("== %s\n", report.Path))
	if report.Failed() {
		builder.WriteString(fmt.Sprintf("Error: %s\n", report.Error))
		return builder.String()
	}
	if len(report.Findings) == 0 {
		builder.WriteString("type-7 パスワードは見つかりませんでした\n")
		return builder.String()
	}

	builder.WriteString(fmt.Sprintf("%6s  %-20s %-30s %s\n", "行", "キーワード", "type-7", "平文"))
	for _, f := range report.Findings {
		plain := f.Plain
		if f.Error != "" {
			plain = "Error: " + f.Error
		}
		builder.WriteString(fmt.Sprintf("%6d  %-20s %-30s %s\n", f.Line, f.Keyword, f.Type7, plain))
	}
	return builder.String()
}
