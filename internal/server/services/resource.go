package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avetrov/qaboard/internal/common"
	"github.com/avetrov/qaboard/internal/dbx"
	sc "github.com/avetrov/qaboard/internal/server/config"
	"github.com/avetrov/qaboard/internal/server/models"
	"github.com/avetrov/qaboard/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams for the AWS SDK so presign flows are testable without a backend.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Quota describes the plan cap for one collection slice. MaxAllowed is -1
// for unlimited plans.
type Quota struct {
	MaxAllowed   int
	CurrentCount int
}

// ResourceService implements collection reads, quota-guarded creation and
// attachment URL presigning.
type ResourceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewResourceService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ResourceService {
	return &ResourceService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

// List returns the full collection slice for a kind and owner, newest first.
func (s *ResourceService) List(ctx context.Context, kind, scopeKind, ownerID string) ([]*models.Resource, error) {
	repo := s.repomanager.Resources(s.db)
	return repo.SelectByOwner(ctx, kind, scopeKind, ownerID)
}

// maxAllowed returns the configured plan cap for a kind; -1 means unlimited.
func (s *ResourceService) maxAllowed(kind string) int {
	switch kind {
	case "suite":
		return s.config.MaxSuitesPerOwner
	case "activity":
		return s.config.MaxActivitiesPerOwner
	default:
		return 0
	}
}

// GetQuota reports the plan cap and current usage for a collection slice.
func (s *ResourceService) GetQuota(ctx context.Context, kind, scopeKind, ownerID string) (*Quota, error) {
	repo := s.repomanager.Resources(s.db)
	count, err := repo.CountByOwner(ctx, kind, scopeKind, ownerID)
	if err != nil {
		return nil, err
	}
	return &Quota{MaxAllowed: s.maxAllowed(kind), CurrentCount: count}, nil
}

// Create validates the name, then inside one transaction re-checks the
// quota and name uniqueness and inserts the row. The transaction is the
// authoritative guard; client-side checks are advisory only.
func (s *ResourceService) Create(ctx context.Context, res *models.Resource) (*models.Resource, error) {
	res.Name = strings.TrimSpace(res.Name)
	if n := len([]rune(res.Name)); n < 3 || n > 100 {
		return nil, common.ErrorValidation
	}

	var created *models.Resource
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Resources(tx)

		max := s.maxAllowed(res.Kind)
		if max >= 0 {
			count, err := repo.CountByOwner(ctx, res.Kind, res.ScopeKind, res.OwnerID)
			if err != nil {
				return err
			}
			if count >= max {
				return common.ErrorQuotaExceeded
			}
		}

		exists, err := repo.ExistsByName(ctx, res.Kind, res.ScopeKind, res.OwnerID, res.Name)
		if err != nil {
			return err
		}
		if exists {
			return common.ErrorAlreadyExists
		}

		created, err = repo.Create(ctx, res)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorQuotaExceeded) || errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating resource: %w", err)
	}

	return created, nil
}

func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("attachments/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ResourceService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GetPresignedPutUrl returns a fresh storage key and a URL the client can
// PUT an attachment to, valid for 15 minutes.
func (s *ResourceService) GetPresignedPutUrl(ctx context.Context) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))

	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// GetPresignedGetUrl returns a download URL for a stored attachment, valid
// for 15 minutes.
func (s *ResourceService) GetPresignedGetUrl(ctx context.Context, key string) (string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
