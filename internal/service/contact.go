// sentiric-contact-service/internal/service/contact.go
package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sentiric/sentiric-contact-service/internal/config"
	"github.com/sentiric/sentiric-contact-service/internal/contact"
	"github.com/sentiric/sentiric-contact-service/internal/fetch"
	"github.com/sentiric/sentiric-contact-service/internal/logger"
	"github.com/sentiric/sentiric-contact-service/internal/store"
	"golang.org/x/sync/semaphore"
)

type contactService struct {
	fetcher *fetch.Fetcher
	store   store.Store
	config  *config.Config
	log     zerolog.Logger

	// Image retrieval runs in its own bounded pool, sized independently of
	// the partition fetch tasks.
	imageSem *semaphore.Weighted
}

func NewContactService(fetcher *fetch.Fetcher, st store.Store, cfg *config.Config, log zerolog.Logger) ContactService {
	workers := cfg.ImageWorkers
	if workers < 1 {
		workers = 1
	}
	return &contactService{
		fetcher:  fetcher,
		store:    st,
		config:   cfg,
		log:      log,
		imageSem: semaphore.NewWeighted(int64(workers)),
	}
}

// --- Business Logic ---

func (s *contactService) FetchAllContacts(ctx context.Context, fieldNames []string) (int, error) {
	fields, err := contact.FieldSetFromNames(fieldNames)
	if err != nil {
		s.log.Warn().
			Str("event", logger.EventUnknownField).
			Err(err).
			Dict("attributes", zerolog.Dict().
				Strs("requested_fields", fieldNames)).
			Msg("Bilinmeyen alan adı, getirme iptal edildi")
		return 0, err
	}

	count, err := s.fetcher.FetchAll(ctx, fields)
	if err != nil {
		s.log.Error().
			Str("event", logger.EventContactFetchFailed).
			Err(err).
			Msg("Kontaklar getirilemedi")
		return 0, err
	}

	s.log.Info().
		Str("event", logger.EventContactFetch).
		Dict("attributes", zerolog.Dict().
			Int("count", count).
			Int("fields", len(fields))).
		Msg("Kontaklar getirildi ve birleştirildi")
	return count, nil
}

func (s *contactService) GetAllContactsPage(ctx context.Context, from, to int) ([]map[string]any, error) {
	contacts, fields, err := s.fetcher.Page(from, to)
	if err != nil {
		s.log.Warn().
			Str("event", logger.EventContactPageFailed).
			Err(err).
			Dict("attributes", zerolog.Dict().
				Int("from", from).
				Int("to", to)).
			Msg("Geçersiz sayfa aralığı")
		return nil, err
	}

	maps := make([]map[string]any, 0, len(contacts))
	for _, c := range contacts {
		maps = append(maps, c.ToMap(fields))
	}

	s.log.Debug().
		Str("event", logger.EventContactPage).
		Dict("attributes", zerolog.Dict().
			Int("from", from).
			Int("to", to).
			Int("returned", len(maps))).
		Msg("Kontak sayfası servis edildi")
	return maps, nil
}

func (s *contactService) ClearFetchedContacts(ctx context.Context) {
	s.fetcher.Clear()
	s.log.Info().
		Str("event", logger.EventContactsCleared).
		Msg("Getirilen kontaklar temizlendi")
}

func (s *contactService) GetContactImage(ctx context.Context, contactID string, size store.ImageSize) ([]byte, error) {
	if err := s.imageSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.imageSem.Release(1)

	data, err := s.store.Image(ctx, contactID, size)
	if err != nil {
		s.log.Error().
			Str("event", logger.EventImageLookupFailed).
			Err(err).
			Dict("attributes", zerolog.Dict().
				Str("contact_id", contactID).
				Str("size", string(size))).
			Msg("Kontak görseli alınamadı")
		return nil, err
	}

	s.log.Debug().
		Str("event", logger.EventImageLookup).
		Dict("attributes", zerolog.Dict().
			Str("contact_id", contactID).
			Str("size", string(size)).
			Bool("found", data != nil)).
		Msg("Kontak görseli sorgulandı")
	return data, nil
}
