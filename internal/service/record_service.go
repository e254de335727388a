package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"chitty-gateway/internal/dto"
	"chitty-gateway/internal/entity"
	"chitty-gateway/internal/pkg/logger"
	"chitty-gateway/internal/pkg/serverutils"
	"chitty-gateway/internal/repository/contract"
	"chitty-gateway/pkg/events"
	"chitty-gateway/pkg/idgen"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrUnknownDomain    = errors.New("unknown record domain")
	ErrInvalidVerifCode = errors.New("invalid verification code")
)

const (
	DomainCases    = "cases"
	DomainAssets   = "assets"
	DomainFinance  = "finance"
	DomainProperty = "property"

	RecordStatusActive = "active"

	JobAnchor      = "RECORD_ANCHOR"
	JobMint        = "RECORD_MINT"
	JobGeneratePDF = "RECORD_PDF_GENERATE"

	secretField    = "verificationCode"
	maxSecretBytes = 72
	recordListSize = 50
)

// DomainSpec describes one generic record collection.
type DomainSpec struct {
	Name       string
	RecordType string
	Required   []string
	Job        string
	// Simulate adds derived, fake business values. Nil for none.
	Simulate func(data map[string]interface{})
}

var domainSpecs = map[string]DomainSpec{
	DomainCases: {
		Name:       DomainCases,
		RecordType: "case",
		Required:   []string{"title", "jurisdiction"},
		Job:        JobGeneratePDF,
		Simulate: func(data map[string]interface{}) {
			data["complianceScore"] = 60 + int(hashOf(data["title"])%41)
		},
	},
	DomainAssets: {
		Name:       DomainAssets,
		RecordType: "asset",
		Required:   []string{"name", "assetType"},
		Job:        JobMint,
		Simulate: func(data map[string]interface{}) {
			data["estimatedValue"] = 1000 + int(hashOf(data["name"])%99000)
		},
	},
	DomainFinance: {
		Name:       DomainFinance,
		RecordType: "finance",
		Required:   []string{"accountName", secretField},
		Job:        JobAnchor,
	},
	DomainProperty: {
		Name:       DomainProperty,
		RecordType: "property",
		Required:   []string{"address", "owner"},
		Job:        JobAnchor,
		Simulate: func(data map[string]interface{}) {
			data["estimatedValue"] = 100000 + int(hashOf(data["address"])%900000)
		},
	},
}

// Domains lists the record collections in a stable order.
func Domains() []string {
	names := make([]string, 0, len(domainSpecs))
	for name := range domainSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type IRecordService interface {
	Create(ctx context.Context, domain string, payload map[string]interface{}) (*dto.RecordResponse, error)
	Show(ctx context.Context, domain, id string) (*dto.RecordResponse, error)
	List(ctx context.Context, domain string) (*dto.ListRecordResponse, error)
	VerifyFinance(ctx context.Context, req *dto.VerifyFinanceRequest) (*dto.VerifyFinanceResponse, error)
}

type recordService struct {
	repo      contract.RecordRepository
	index     contract.RecordIndexRepository
	publisher IPublisherService
	logger    logger.ILogger
	now       func() time.Time
}

// NewRecordService wires the generic record store. index and publisher are
// optional; pass nil when no relational store or queue is configured.
func NewRecordService(
	repo contract.RecordRepository,
	index contract.RecordIndexRepository,
	publisher IPublisherService,
	log logger.ILogger,
) IRecordService {
	return &recordService{
		repo:      repo,
		index:     index,
		publisher: publisher,
		logger:    log,
		now:       utcNow,
	}
}

func (s *recordService) spec(domain string) (DomainSpec, error) {
	spec, ok := domainSpecs[domain]
	if !ok {
		return DomainSpec{}, ErrUnknownDomain
	}
	return spec, nil
}

func (s *recordService) Create(ctx context.Context, domain string, payload map[string]interface{}) (*dto.RecordResponse, error) {
	spec, err := s.spec(domain)
	if err != nil {
		return nil, err
	}

	rules := make(map[string]interface{}, len(spec.Required))
	for _, field := range spec.Required {
		rules[field] = "required"
	}
	if err := serverutils.ValidateMap(payload, rules); err != nil {
		return nil, err
	}

	data := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		data[k] = v
	}

	record := &entity.Record{
		Id:        idgen.Chitty(spec.RecordType),
		Domain:    domain,
		Status:    RecordStatusActive,
		CreatedAt: s.now(),
	}

	if code, ok := data[secretField]; ok {
		secret := stringify(code)
		// bcrypt rejects inputs longer than 72 bytes.
		if len(secret) > maxSecretBytes {
			return nil, serverutils.NewBadRequest(fmt.Sprintf("%s must be at most %d bytes", secretField, maxSecretBytes))
		}
		delete(data, secretField)
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		record.SecretHash = string(hash)
	}

	if spec.Simulate != nil {
		spec.Simulate(data)
	}
	record.Data = data

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	if s.index != nil {
		if err := s.index.Create(ctx, record); err != nil {
			// The key/value store is authoritative; a missing index row only affects listing.
			s.logger.Warn("RECORD", "Failed to index record", map[string]interface{}{
				"record_id": record.Id,
				"error":     err.Error(),
			})
		}
	}

	s.enqueue(ctx, spec.Job, record)

	s.logger.Info("RECORD", "Record created", map[string]interface{}{
		"record_id": record.Id,
		"domain":    domain,
	})
	return toRecordResponse(record), nil
}

func (s *recordService) enqueue(ctx context.Context, job string, record *entity.Record) {
	if s.publisher == nil || job == "" {
		return
	}

	evt := events.BaseEvent{
		Type: job,
		Data: map[string]interface{}{
			"record_id": record.Id,
			"domain":    record.Domain,
		},
		OccurredAt: s.now(),
	}

	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Error("RECORD", "Failed to enqueue "+job, map[string]interface{}{
			"record_id": record.Id,
			"error":     err.Error(),
		})
	}
}

func (s *recordService) find(ctx context.Context, domain, id string) (*entity.Record, error) {
	if _, err := s.spec(domain); err != nil {
		return nil, err
	}
	record, err := s.repo.FindOne(ctx, domain, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

func (s *recordService) Show(ctx context.Context, domain, id string) (*dto.RecordResponse, error) {
	record, err := s.find(ctx, domain, id)
	if err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

func (s *recordService) List(ctx context.Context, domain string) (*dto.ListRecordResponse, error) {
	if _, err := s.spec(domain); err != nil {
		return nil, err
	}

	res := &dto.ListRecordResponse{
		Domain:  domain,
		Records: []*dto.RecordResponse{},
	}
	if s.index == nil {
		return res, nil
	}

	records, err := s.index.FindAllByDomain(ctx, domain, recordListSize)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		res.Records = append(res.Records, toRecordResponse(r))
	}
	res.Total = len(res.Records)
	return res, nil
}

func (s *recordService) VerifyFinance(ctx context.Context, req *dto.VerifyFinanceRequest) (*dto.VerifyFinanceResponse, error) {
	record, err := s.find(ctx, DomainFinance, req.RecordId)
	if err != nil {
		return nil, err
	}

	if record.SecretHash == "" {
		return nil, ErrInvalidVerifCode
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.SecretHash), []byte(req.Code)); err != nil {
		s.logger.Warn("RECORD", "Finance verification failed", map[string]interface{}{"record_id": record.Id})
		return nil, ErrInvalidVerifCode
	}

	return &dto.VerifyFinanceResponse{
		Success:  true,
		RecordId: record.Id,
		Verified: true,
	}, nil
}

func toRecordResponse(r *entity.Record) *dto.RecordResponse {
	return &dto.RecordResponse{
		Id:        r.Id,
		Domain:    r.Domain,
		Status:    r.Status,
		Data:      r.Data,
		CreatedAt: r.CreatedAt,
	}
}

// hashOf gives the simulated scores a stable value per input.
func hashOf(v interface{}) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(stringify(v))))
	return h.Sum32()
}
