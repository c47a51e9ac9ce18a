package service

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"shiftboard/config"
	"shiftboard/internal/dto"
	"shiftboard/internal/repository"
	pkgerrors "shiftboard/pkg/errors"
)

// ── 节假日模块业务错误 ──

var (
	ErrHolidayImportFailed = errors.New("节假日日历导入失败")
	ErrHolidayFetchFailed  = errors.New("无法获取节假日订阅地址")
	ErrHolidayNotFound     = errors.New("节假日不存在")
	ErrHolidayConflict     = errors.New("节假日已被其他操作修改，请刷新后重试")
)

// HolidayService 节假日业务接口
type HolidayService interface {
	List(ctx context.Context, v Viewer) ([]dto.HolidayResponse, error)
	ImportICS(ctx context.Context, v Viewer, r io.Reader) (*dto.ImportHolidaysResponse, error)
	ImportFromURL(ctx context.Context, v Viewer, req *dto.ImportHolidaysRequest) (*dto.ImportHolidaysResponse, error)
	Update(ctx context.Context, v Viewer, holidayID string, req *dto.UpdateHolidayRequest) (*dto.HolidayResponse, error)
	Delete(ctx context.Context, v Viewer, holidayID string) error
}

type holidayService struct {
	repo   *repository.Repository
	cfg    *config.HolidayConfig
	loc    *time.Location
	logger *zap.Logger
}

// NewHolidayService 创建 HolidayService 实例
func NewHolidayService(repo *repository.Repository, cfg *config.HolidayConfig, loc *time.Location, logger *zap.Logger) HolidayService {
	return &holidayService{repo: repo, cfg: cfg, loc: loc, logger: logger}
}

func (s *holidayService) List(ctx context.Context, v Viewer) ([]dto.HolidayResponse, error) {
	holidays, err := s.repo.Holiday.ListByOrganization(ctx, v.OrganizationID)
	if err != nil {
		s.logger.Error("列出节假日失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.HolidayResponse, 0, len(holidays))
	for i := range holidays {
		holidays[i].Date = localDay(holidays[i].Date, s.loc)
		result = append(result, *toHolidayResponse(&holidays[i]))
	}
	return result, nil
}

// ImportICS 解析 ICS 并写入；(日期, 名称) 已存在的记录被覆盖
func (s *holidayService) ImportICS(ctx context.Context, v Viewer, r io.Reader) (*dto.ImportHolidaysResponse, error) {
	if s.cfg != nil && s.cfg.ICSMaxBytes > 0 {
		r = io.LimitReader(r, s.cfg.ICSMaxBytes)
	}
	holidays, skipped, err := ParseHolidayICS(r, v.OrganizationID, s.loc)
	if err != nil {
		s.logger.Warn("解析节假日 ICS 失败", zap.Error(err))
		return nil, ErrHolidayImportFailed
	}
	for i := range holidays {
		holidays[i].CreatedBy = &v.UserID
		holidays[i].UpdatedBy = &v.UserID
	}

	if err := s.repo.Holiday.BatchUpsert(ctx, holidays); err != nil {
		s.logger.Error("写入节假日失败", zap.Int("count", len(holidays)), zap.Error(err))
		return nil, err
	}

	s.logger.Info("节假日导入完成",
		zap.String("org", v.OrganizationID),
		zap.Int("imported", len(holidays)),
		zap.Int("skipped", skipped),
	)
	return &dto.ImportHolidaysResponse{Imported: len(holidays), Skipped: skipped}, nil
}

func (s *holidayService) ImportFromURL(ctx context.Context, v Viewer, req *dto.ImportHolidaysRequest) (*dto.ImportHolidaysResponse, error) {
	timeout, maxBytes := 30*time.Second, int64(5<<20)
	if s.cfg != nil {
		if s.cfg.ICSFetchTimeout > 0 {
			timeout = s.cfg.ICSFetchTimeout
		}
		if s.cfg.ICSMaxBytes > 0 {
			maxBytes = s.cfg.ICSMaxBytes
		}
	}

	body, err := FetchICSContent(ctx, req.URL, timeout, maxBytes)
	if err != nil {
		s.logger.Warn("获取节假日订阅失败", zap.String("url", req.URL), zap.Error(err))
		return nil, ErrHolidayFetchFailed
	}
	defer body.Close()

	return s.ImportICS(ctx, v, body)
}

// Update 修改节假日名称 / 类型 / 描述，version 与存储不一致时返回 ErrHolidayConflict
func (s *holidayService) Update(ctx context.Context, v Viewer, holidayID string, req *dto.UpdateHolidayRequest) (*dto.HolidayResponse, error) {
	h, err := s.repo.Holiday.GetByID(ctx, v.OrganizationID, holidayID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHolidayNotFound
		}
		return nil, err
	}
	if h.Version != req.Version {
		return nil, ErrHolidayConflict
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Type != nil {
		h.Type = req.Type
	}
	if req.Description != nil {
		h.Description = req.Description
	}
	h.UpdatedBy = &v.UserID

	if err := s.repo.Holiday.Update(ctx, h); err != nil {
		if errors.Is(err, pkgerrors.ErrOptimisticLock) {
			return nil, ErrHolidayConflict
		}
		s.logger.Error("更新节假日失败", zap.String("holiday_id", holidayID), zap.Error(err))
		return nil, err
	}

	h.Date = localDay(h.Date, s.loc)
	return toHolidayResponse(h), nil
}

// Delete 删除节假日，不存在时视为成功
func (s *holidayService) Delete(ctx context.Context, v Viewer, holidayID string) error {
	if err := s.repo.Holiday.Delete(ctx, v.OrganizationID, holidayID); err != nil {
		s.logger.Error("删除节假日失败", zap.String("holiday_id", holidayID), zap.Error(err))
		return err
	}
	return nil
}
