package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type OSSConfig struct {
	Endpoint      string `env:"ALI_OSS_ENDPOINT"`
	AccessKey     string `env:"ALI_OSS_ACCESS_KEY"`
	SecretKey     string `env:"ALI_OSS_SECRET_KEY"`
	SecurityToken string `env:"ALI_OSS_SECURITY_TOKEN"`
	Bucket        string `env:"ALI_OSS_BUCKET"`
	PublicBase    string `env:"ALI_OSS_PUBLIC_BASE"`
	Prefix        string `env:"ALI_OSS_PREFIX" envDefault:"coursedesk"`
}

func (c OSSConfig) Enabled() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

// OSSStore uploads to an Aliyun OSS bucket and serves public URLs.
type OSSStore struct {
	bucket     *oss.Bucket
	endpoint   string
	bucketName string
	publicBase string
	prefix     string
}

func NewOSSStore(cfg OSSConfig) (*OSSStore, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var opts []oss.ClientOption
	if cfg.SecurityToken != "" {
		opts = append(opts, oss.SecurityToken(cfg.SecurityToken))
	}
	client, err := oss.New(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "oss.New")
	}
	bkt, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "client.Bucket")
	}

	if loc, err := client.GetBucketLocation(cfg.Bucket); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 {
			log.Warnf("[OSS] skip location check (access denied) bucket=%s", cfg.Bucket)
		} else {
			return nil, errors.Wrap(err, "verify bucket")
		}
	} else {
		log.Infof("[OSS] bucket %s location: %s", cfg.Bucket, loc)
	}

	return &OSSStore{
		bucket:     bkt,
		endpoint:   cfg.Endpoint,
		bucketName: cfg.Bucket,
		publicBase: strings.TrimRight(strings.TrimSpace(cfg.PublicBase), "/"),
		prefix:     strings.Trim(cfg.Prefix, "/"),
	}, nil
}

func (s *OSSStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.prefix != "" {
		key = s.prefix + "/" + strings.TrimLeft(key, "/")
	}
	err := s.bucket.PutObject(key, bytes.NewReader(data),
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	)
	if err != nil {
		return "", errors.Wrapf(err, "put object %s", key)
	}
	return s.PublicURL(key), nil
}

// Delete removes the object behind a URL produced by this store. Foreign URLs are ignored.
func (s *OSSStore) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		return nil
	}
	return s.bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *OSSStore) PublicURL(key string) string {
	if s.publicBase != "" {
		return s.publicBase + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, end, key)
}

func (s *OSSStore) keyFromURL(url string) (string, bool) {
	base := s.PublicURL("")
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	key := strings.TrimPrefix(url, base)
	return key, key != ""
}
