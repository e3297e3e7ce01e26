package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ppc-optimizer/internal/config/configs"
	"ppc-optimizer/internal/core/bidding"
	"ppc-optimizer/internal/core/brandshare"
	"ppc-optimizer/internal/core/domain"
	"ppc-optimizer/internal/core/port"
)

// PPCUseCase turns uploaded spreadsheets into bid recommendations. It
// orchestrates the upload store, the sheet reader and the pure rules in
// core/bidding and core/brandshare to implement port.PPCUseCase.
type PPCUseCase struct {
	store  port.UploadStore
	reader port.SheetReader
	logger *slog.Logger

	// allowed lists the accepted file extensions, without the dot.
	allowed []string
}

// NewPPCUseCase creates a use case accepting the extensions in cfg.
func NewPPCUseCase(store port.UploadStore, reader port.SheetReader, cfg configs.Upload, logger *slog.Logger) *PPCUseCase {
	return &PPCUseCase{
		store:   store,
		reader:  reader,
		logger:  logger,
		allowed: cfg.AllowedExtensions,
	}
}

// SuggestBids applies the ACOS threshold rule to every row of the upload.
// The result has one record per data row, in sheet order.
func (u *PPCUseCase) SuggestBids(ctx context.Context, upload domain.Upload) ([]domain.CampaignRecord, error) {
	sheet, err := u.load(ctx, upload)
	if err != nil {
		return nil, err
	}
	records, err := domain.CampaignRecordsFromSheet(sheet)
	if err != nil {
		return nil, err
	}
	out, err := bidding.Suggest(records)
	if err != nil {
		return nil, err
	}

	s := bidding.Summarize(out)
	u.logger.InfoContext(ctx, "bids suggested",
		slog.String("file", upload.Filename),
		slog.Int("rows", s.Rows),
		slog.Int("reduced", s.Reduced),
		slog.Int("increased", s.Increased),
		slog.Int("held", s.Held),
		slog.String("delta", s.Delta().StringFixed(2)),
	)
	return out, nil
}

// MaxBids computes the target-ACOS max bid for every row of the upload.
func (u *PPCUseCase) MaxBids(ctx context.Context, upload domain.Upload, targetACOS float64) ([]domain.MaxBidRecord, error) {
	// validate before the upload touches disk
	if err := bidding.ValidateTargetACOS(targetACOS); err != nil {
		return nil, err
	}
	sheet, err := u.load(ctx, upload)
	if err != nil {
		return nil, err
	}
	records, err := domain.CampaignRecordsFromSheet(sheet)
	if err != nil {
		return nil, err
	}
	out, err := bidding.MaxBids(records, targetACOS)
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "max bids computed",
		slog.String("file", upload.Filename),
		slog.Int("rows", len(out)),
		slog.Float64("target_acos", targetACOS),
	)
	return out, nil
}

// BrandShare returns the opportunity rows of a brand-analytics export.
func (u *PPCUseCase) BrandShare(ctx context.Context, upload domain.Upload) ([]domain.BrandShareRow, error) {
	sheet, err := u.load(ctx, upload)
	if err != nil {
		return nil, err
	}
	out, err := brandshare.Analyze(sheet)
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "brand share analysed",
		slog.String("file", upload.Filename),
		slog.Int("rows", len(sheet.Rows)),
		slog.Int("opportunities", len(out)),
	)
	return out, nil
}

// load validates the upload, stores it, decodes its first sheet and removes
// the stored copy again on every path, including decode failures.
func (u *PPCUseCase) load(ctx context.Context, upload domain.Upload) (*domain.Sheet, error) {
	if upload.Filename == "" || upload.Body == nil {
		return nil, domain.ErrNoFile
	}
	if !upload.Allowed(u.allowed) {
		return nil, &domain.InvalidFileTypeError{Filename: upload.Filename}
	}

	path, err := u.store.Save(ctx, upload.Filename, upload.Body)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	defer func() {
		if rmErr := u.store.Remove(path); rmErr != nil {
			u.logger.WarnContext(ctx, "remove upload failed", slog.String("path", path), slog.Any("error", rmErr))
		}
	}()

	sheet, err := u.reader.ReadSheet(ctx, path)
	var pe *domain.ParseError
	if errors.As(err, &pe) {
		// report the client's name, not the stored one
		pe.Filename = upload.Filename
	}
	return sheet, err
}
