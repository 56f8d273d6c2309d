package portal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stvmedia/media-portal/internal/db"
	"github.com/stvmedia/media-portal/internal/youtube"
)

// VideoFilter composes the optional predicates of the public video list.
type VideoFilter struct {
	CategoryID *int
	SubjectID  *int
	Featured   *bool
	Limit      int
}

// Videos retrieves videos with category and subject expanded, sorted by
// published_at DESC.
func (m *Manager) Videos(ctx context.Context, filter VideoFilter) (VideoList, error) {
	dbVideos, err := m.db.Videos(ctx, db.VideoFilter{
		CategoryID: filter.CategoryID,
		SubjectID:  filter.SubjectID,
		Featured:   filter.Featured,
		Limit:      filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("db get videos: %w", err)
	}

	return NewVideoList(dbVideos), nil
}

func (m *Manager) VideoByID(ctx context.Context, videoID int) (*Video, error) {
	dbVideo, err := m.db.VideoByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("db get video by id: %w", err)
	} else if dbVideo == nil {
		return nil, nil
	}

	video := NewVideo(dbVideo)
	return &video, nil
}

// LatestVideo selects the video for the home hero slot. An active live
// broadcast takes precedence over the chronologically most recent video;
// among several active broadcasts the most recently started one wins.
func (m *Manager) LatestVideo(ctx context.Context) (*Video, error) {
	now := m.now()

	activeRows, err := m.db.ActiveLiveVideos(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("db get active live videos: %w", err)
	}

	latestRow, err := m.db.LatestPublishedVideo(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get latest video: %w", err)
	}

	active := NewVideoList(activeRows)
	var latest *Video
	if latestRow != nil {
		v := NewVideo(latestRow)
		latest = &v
	}

	return selectLatest(active, latest, now), nil
}

// VideoDraft is the write payload for create and update. YoutubeURL
// accepts any supported URL shape and is resolved to the canonical id
// before anything is stored.
type VideoDraft struct {
	TitlePT       string `validate:"required"`
	TitleEN       string
	TitleES       string
	DescriptionPT string
	DescriptionEN string
	DescriptionES string
	YoutubeURL    string `validate:"required"`
	CategoryID    *int
	SubjectID     *int
	IsFeatured    bool
	IsLive        bool
	LiveStartDate *time.Time
	LiveEndDate   *time.Time
	PublishedAt   *time.Time
}

func (m *Manager) checkVideoDraft(draft VideoDraft) (youtube.VideoID, error) {
	if err := m.checkStruct(draft); err != nil {
		return "", err
	}

	youtubeID, err := youtube.Resolve(draft.YoutubeURL)
	if errors.Is(err, youtube.ErrNoVideoID) {
		return "", newValidationError("YoutubeURL", "not a recognizable youtube video reference")
	} else if err != nil {
		return "", err
	}

	if draft.IsLive {
		if draft.LiveStartDate == nil || draft.LiveEndDate == nil {
			return "", newValidationError("LiveStartDate", "live videos require both start and end dates")
		}
		if !draft.LiveEndDate.After(*draft.LiveStartDate) {
			return "", newValidationError("LiveEndDate", "live end date must be after start date")
		}
	}

	return youtubeID, nil
}

func (draft VideoDraft) apply(video *db.Video, youtubeID youtube.VideoID) {
	video.TitlePT = draft.TitlePT
	video.TitleEN = draft.TitleEN
	video.TitleES = draft.TitleES
	video.DescriptionPT = draft.DescriptionPT
	video.DescriptionEN = draft.DescriptionEN
	video.DescriptionES = draft.DescriptionES
	video.YoutubeID = youtubeID.String()
	video.CategoryID = draft.CategoryID
	video.SubjectID = draft.SubjectID
	video.IsFeatured = draft.IsFeatured
	video.IsLive = draft.IsLive

	if draft.IsLive {
		video.LiveStartDate = draft.LiveStartDate
		video.LiveEndDate = draft.LiveEndDate
	} else {
		video.LiveStartDate = nil
		video.LiveEndDate = nil
	}

	if draft.PublishedAt != nil {
		video.PublishedAt = *draft.PublishedAt
	}
}

func (m *Manager) CreateVideo(ctx context.Context, draft VideoDraft, createdBy string) (*Video, error) {
	youtubeID, err := m.checkVideoDraft(draft)
	if err != nil {
		return nil, err
	}

	dbVideo := &db.Video{
		PublishedAt: m.now(),
		CreatedBy:   createdBy,
	}
	draft.apply(dbVideo, youtubeID)

	if err := m.db.CreateVideo(ctx, dbVideo); err != nil {
		return nil, fmt.Errorf("db create video: %w", err)
	}

	video := NewVideo(dbVideo)
	return &video, nil
}

func (m *Manager) UpdateVideo(ctx context.Context, videoID int, draft VideoDraft) (*Video, error) {
	youtubeID, err := m.checkVideoDraft(draft)
	if err != nil {
		return nil, err
	}

	existing, err := m.db.VideoByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("db get video by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	draft.apply(existing, youtubeID)

	updated, err := m.db.UpdateVideo(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("db update video: %w", err)
	} else if updated == nil {
		return nil, ErrNotFound
	}

	video := NewVideo(updated)
	return &video, nil
}

func (m *Manager) DeleteVideo(ctx context.Context, videoID int) error {
	found, err := m.db.DeleteVideo(ctx, videoID)
	if err != nil {
		return fmt.Errorf("db delete video: %w", err)
	} else if !found {
		return ErrNotFound
	}

	return nil
}
