package ytclient

import (
	"context"
	"time"

	"github.com/vfg2006/yt-analytics-sync/internal/domain"
	youtube "google.golang.org/api/youtube/v3"
)

// videosPerDetailsCall é o máximo de ids por chamada de videos.list.
const videosPerDetailsCall = 50

// ListChannelVideos percorre a playlist de uploads do canal autenticado e
// enriquece cada vídeo com título e data de publicação. A ordem da playlist
// (mais recente primeiro) é preservada.
func (c *YouTubeClient) ListChannelVideos(ctx context.Context) ([]domain.Video, error) {
	channels, err := c.data.Channels.List([]string{"contentDetails"}).
		Mine(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapRequestError(err)
	}
	if len(channels.Items) == 0 {
		return nil, nil
	}

	uploads := channels.Items[0].ContentDetails.RelatedPlaylists.Uploads

	ids, err := c.listUploadedVideoIDs(ctx, uploads)
	if err != nil {
		return nil, err
	}

	return c.describeVideos(ctx, ids)
}

func (c *YouTubeClient) listUploadedVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	var ids []string

	pageToken := ""
	for {
		call := c.data.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(videosPerDetailsCall).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, wrapRequestError(err)
		}

		for _, item := range resp.Items {
			ids = append(ids, item.ContentDetails.VideoId)
		}

		if resp.NextPageToken == "" {
			return ids, nil
		}
		pageToken = resp.NextPageToken
	}
}

// describeVideos busca título e data de publicação em lotes, mantendo a
// ordem de entrada dos ids.
func (c *YouTubeClient) describeVideos(ctx context.Context, ids []string) ([]domain.Video, error) {
	videos := make([]domain.Video, 0, len(ids))

	for start := 0; start < len(ids); start += videosPerDetailsCall {
		end := start + videosPerDetailsCall
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		resp, err := c.data.Videos.List([]string{"snippet"}).
			Id(batch...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, wrapRequestError(err)
		}

		byID := make(map[string]*youtube.Video, len(resp.Items))
		for _, item := range resp.Items {
			byID[item.Id] = item
		}

		for _, id := range batch {
			item, ok := byID[id]
			if !ok {
				// Vídeo removido ou privado entre as duas chamadas
				continue
			}

			video := domain.Video{ID: id, Title: item.Snippet.Title}
			if published, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
				date := publishDate(published)
				video.PublishedAt = &date
			}

			videos = append(videos, video)
		}
	}

	return videos, nil
}

// publishDate trunca o instante de publicação para a meia-noite UTC, a
// granularidade usada em todos os períodos.
func publishDate(published time.Time) time.Time {
	p := published.UTC()
	return time.Date(p.Year(), p.Month(), p.Day(), 0, 0, 0, 0, time.UTC)
}
