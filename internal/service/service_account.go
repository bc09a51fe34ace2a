package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

// accountService implements AccountService. Image replacement runs as a
// three step saga (uploaded, swapped, cleaned); the step reached is always
// reported back, also when a later step fails.
type accountService struct {
	userRepository store.UserRepository
	images         adapter.ImageHost
	events         adapter.EventPublisher

	now    func() time.Time
	logger *logger.Logger
}

func NewAccountService(userRepository store.UserRepository, images adapter.ImageHost, events adapter.EventPublisher, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		images:         images,
		events:         events,
		now:            time.Now,
		logger:         logger,
	}
}

// GetCurrentUser returns the sanitized record of userID.
func (s *accountService) GetCurrentUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*accountService.GetCurrentUser").Msg("user search failed")
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}

	return user.Sanitized(), nil
}

// DeleteAccount removes the record first and the images afterwards. An
// image that cannot be deleted does not fail the call; it is reported as a
// warning.
func (s *accountService) DeleteAccount(ctx context.Context, userID string) (models.AccountDeletion, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.userRepository.DeleteUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.AccountDeletion{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*accountService.DeleteAccount").Msg("user deletion failed")
		return models.AccountDeletion{}, fmt.Errorf("user deletion failed: %w", err)
	}

	var warnings []models.Warning
	for _, slot := range []struct {
		name  models.ImageSlot
		image models.Image
	}{
		{name: models.ImageSlotAvatar, image: deleted.Avatar},
		{name: models.ImageSlotCover, image: deleted.CoverImage},
	} {
		if w, ok := s.deleteImage(ctx, slot.name, slot.image); !ok {
			warnings = append(warnings, w)
		}
	}

	publishEvent(ctx, s.events, models.EventUserDeleted, deleted, s.now())

	return models.AccountDeletion{User: deleted.Sanitized(), Warnings: warnings}, nil
}

func (s *accountService) ChangeAvatar(ctx context.Context, userID, localPath string) (models.ImageSwap, error) {
	return s.replaceImage(ctx, userID, localPath, models.ImageSlotAvatar)
}

func (s *accountService) ChangeCoverImage(ctx context.Context, userID, localPath string) (models.ImageSwap, error) {
	return s.replaceImage(ctx, userID, localPath, models.ImageSlotCover)
}

// replaceImage uploads the new file, points the record at it, then deletes
// the previous image.
//
//   - upload fails: nothing changed, ErrUpload kind returned;
//   - record update fails: the new upload is deleted best-effort, state
//     stays uploaded, error returned;
//   - old image deletion fails: state stays swapped, a warning is attached
//     and the call succeeds.
func (s *accountService) replaceImage(ctx context.Context, userID, localPath string, slot models.ImageSlot) (models.ImageSwap, error) {
	log := logger.FromContext(ctx).WithStr("slot", string(slot))

	if localPath == "" {
		return models.ImageSwap{}, ErrImageFileRequired
	}

	current, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.ImageSwap{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*accountService.replaceImage").Msg("user search failed")
		return models.ImageSwap{}, fmt.Errorf("user search failed: %w", err)
	}

	uploaded, err := s.images.Upload(ctx, localPath)
	if err != nil {
		log.Err(err).Str("func", "*accountService.replaceImage").Msg("image upload failed")
		if slot == models.ImageSlotCover {
			return models.ImageSwap{}, fmt.Errorf("%w: %w", ErrCoverImageUpload, err)
		}
		return models.ImageSwap{}, fmt.Errorf("%w: %w", ErrAvatarUpload, err)
	}
	swap := models.ImageSwap{User: current.Sanitized(), Slot: slot, State: models.SwapStateUploaded}

	patch := models.UserPatch{UserID: userID}
	previous := current.Avatar
	if slot == models.ImageSlotCover {
		patch.CoverImage = &uploaded
		previous = current.CoverImage
	} else {
		patch.Avatar = &uploaded
	}

	updated, err := s.userRepository.UpdateUser(ctx, patch)
	if err != nil {
		deleteImagesBestEffort(ctx, s.images, uploaded)
		if errors.Is(err, store.ErrUserNotFound) {
			return swap, ErrUserNotFound
		}
		log.Err(err).Str("func", "*accountService.replaceImage").Msg("image reference was not stored")
		return swap, fmt.Errorf("image reference was not stored: %w", err)
	}
	swap.User = updated.Sanitized()
	swap.State = models.SwapStateSwapped

	if w, ok := s.deleteImage(ctx, slot, previous); !ok {
		swap.Warnings = append(swap.Warnings, w)
		return swap, nil
	}
	swap.State = models.SwapStateCleaned

	return swap, nil
}

// deleteImage removes image from the host. It reports false with a warning
// when the image may still exist there. A zero image needs no deletion.
func (s *accountService) deleteImage(ctx context.Context, slot models.ImageSlot, image models.Image) (models.Warning, bool) {
	log := logger.FromContext(ctx)

	if image.IsZero() {
		return models.Warning{}, true
	}

	warning := models.Warning{
		Operation: models.WarningImageDeletion,
		Resource:  image.URL,
	}

	if image.PublicID == "" {
		warning.Message = fmt.Sprintf("previous %s has no public id and was left on the image host", slot)
		return warning, false
	}

	result, err := s.images.Delete(ctx, image.PublicID)
	if err == nil && !result.Deleted() {
		err = fmt.Errorf("image host answered %q", result.Result)
	}
	if err != nil {
		log.Warn().Err(err).Str("public_id", image.PublicID).Msg("image was not deleted")
		warning.Message = fmt.Sprintf("%s: %s was left on the image host", ErrImageDeletion, slot)
		return warning, false
	}

	return models.Warning{}, true
}
