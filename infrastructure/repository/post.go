package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

const postsTable = "scheduled_posts"

type PostRepository interface {
	InsertPosts(tx *sql.Tx, posts []*domain.ScheduledPost) error
	ListPostsByCampaign(campaignID string) ([]*domain.ScheduledPost, error)
}

type postRepository struct {
	conn *postgres.Connection
}

func NewPostRepository(conn *postgres.Connection) PostRepository {
	return &postRepository{
		conn: conn,
	}
}

// InsertPosts insere os posts gerados na ativação. Recebe a transação da
// ativação para que posts e status da campanha sejam gravados atomicamente.
func (r *postRepository) InsertPosts(tx *sql.Tx, posts []*domain.ScheduledPost) error {
	if len(posts) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(postsTable).
		Columns(
			"id", "campaign_id", "platform", "content", "content_type",
			"template", "module_id", "media_urls", "scheduled_for",
			"published_at", "status", "external_post_id", "engagement_data",
			"created_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, post := range posts {
		var engagement []byte
		if post.Engagement != nil {
			data, err := json.Marshal(post.Engagement)
			if err != nil {
				return err
			}
			engagement = data
		}

		builder = builder.Values(
			post.ID,
			post.CampaignID,
			post.Platform,
			post.Content,
			post.ContentType,
			post.Template,
			post.ModuleID,
			pq.Array(post.MediaURLs),
			post.ScheduledFor,
			post.PublishedAt,
			post.Status,
			post.ExternalPostID,
			engagement,
			post.CreatedAt,
		)
	}

	insertSQL, insertArgs, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(insertSQL, insertArgs...)
	return err
}

func (r *postRepository) ListPostsByCampaign(campaignID string) ([]*domain.ScheduledPost, error) {
	selectSQL, selectArgs, err := squirrel.
		Select(
			"id", "campaign_id", "platform", "content", "content_type",
			"template", "module_id", "media_urls", "scheduled_for",
			"published_at", "status", "external_post_id", "engagement_data",
			"created_at",
		).
		From(postsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("scheduled_for ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(selectSQL, selectArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	posts := make([]*domain.ScheduledPost, 0)
	for rows.Next() {
		post, err := deserializePost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func deserializePost(row rowScanner) (*domain.ScheduledPost, error) {
	post := &domain.ScheduledPost{}

	var engagement []byte

	if err := row.Scan(
		&post.ID,
		&post.CampaignID,
		&post.Platform,
		&post.Content,
		&post.ContentType,
		&post.Template,
		&post.ModuleID,
		pq.Array(&post.MediaURLs),
		&post.ScheduledFor,
		&post.PublishedAt,
		&post.Status,
		&post.ExternalPostID,
		&engagement,
		&post.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(engagement) > 0 {
		post.Engagement = &domain.EngagementData{}
		if err := json.Unmarshal(engagement, post.Engagement); err != nil {
			return nil, err
		}
	}

	return post, nil
}
