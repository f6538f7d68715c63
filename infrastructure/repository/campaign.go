package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

const campaignsTable = "campaigns"

type CampaignRepository interface {
	CreateCampaign(campaign *domain.Campaign) error
	GetCampaignByID(campaignID string) (*domain.Campaign, error)
	ListCampaignsByUser(userID string) ([]*domain.Campaign, error)
	UpdateCampaignStatus(campaignID string, status domain.CampaignStatus) (int64, error)
	MarkCampaignActivated(tx *sql.Tx, campaignID string, startedAt, endsAt time.Time, postsRemaining int) error
	ListActiveCampaignsEndedBefore(moment time.Time) ([]*domain.Campaign, error)
	UpdateCampaignEngagementRate(campaignID string, engagementRate float64) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) CreateCampaign(campaign *domain.Campaign) error {
	businessContext, err := json.Marshal(campaign.BusinessContext)
	if err != nil {
		return err
	}

	scheduleConfig, err := json.Marshal(campaign.ScheduleConfig)
	if err != nil {
		return err
	}

	insertSQL, insertArgs, err := squirrel.
		Insert(campaignsTable).
		Columns(
			"id", "user_id", "name", "type", "status", "platforms", "modules",
			"business_context", "schedule_config", "posts_published",
			"posts_remaining", "leads_generated", "engagement_rate",
			"started_at", "ends_at", "created_at", "updated_at",
		).
		Values(
			campaign.ID,
			campaign.UserID,
			campaign.Name,
			campaign.Type,
			campaign.Status,
			pq.Array(platformStrings(campaign.Platforms)),
			pq.Array(campaign.Modules),
			businessContext,
			scheduleConfig,
			campaign.PostsPublished,
			campaign.PostsRemaining,
			campaign.LeadsGenerated,
			campaign.EngagementRate,
			campaign.StartedAt,
			campaign.EndsAt,
			campaign.CreatedAt,
			campaign.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(insertSQL, insertArgs...)
	return err
}

func (r *campaignRepository) GetCampaignByID(campaignID string) (*domain.Campaign, error) {
	selectSQL, selectArgs, err := campaignSelect().
		Where(squirrel.Eq{"id": campaignID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(selectSQL, selectArgs...)

	campaign, err := deserializeCampaign(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) ListCampaignsByUser(userID string) ([]*domain.Campaign, error) {
	selectSQL, selectArgs, err := campaignSelect().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := deserializeCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

// ListActiveCampaignsEndedBefore retorna campanhas ativas cujo prazo já
// venceu, candidatas à conclusão automática
func (r *campaignRepository) ListActiveCampaignsEndedBefore(moment time.Time) ([]*domain.Campaign, error) {
	selectSQL, selectArgs, err := campaignSelect().
		Where(squirrel.Eq{"status": domain.CampaignStatusActive}).
		Where(squirrel.LtOrEq{"ends_at": moment}).
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := deserializeCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func (r *campaignRepository) UpdateCampaignStatus(campaignID string, status domain.CampaignStatus) (int64, error) {
	updateSQL, updateArgs, err := squirrel.
		Update(campaignsTable).
		Set("status", status).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.Exec(updateSQL, updateArgs...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// MarkCampaignActivated grava os carimbos de ativação e o total real de
// posts gerados. Roda dentro da mesma transação que insere os posts.
func (r *campaignRepository) MarkCampaignActivated(
	tx *sql.Tx,
	campaignID string,
	startedAt, endsAt time.Time,
	postsRemaining int,
) error {
	updateSQL, updateArgs, err := squirrel.
		Update(campaignsTable).
		Set("status", domain.CampaignStatusActive).
		Set("started_at", startedAt).
		Set("ends_at", endsAt).
		Set("posts_remaining", postsRemaining).
		Set("updated_at", startedAt).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(updateSQL, updateArgs...)
	return err
}

func (r *campaignRepository) UpdateCampaignEngagementRate(campaignID string, engagementRate float64) error {
	updateSQL, updateArgs, err := squirrel.
		Update(campaignsTable).
		Set("engagement_rate", engagementRate).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(updateSQL, updateArgs...)
	return err
}

func campaignSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"id", "user_id", "name", "type", "status", "platforms", "modules",
			"business_context", "schedule_config", "posts_published",
			"posts_remaining", "leads_generated", "engagement_rate",
			"started_at", "ends_at", "created_at", "updated_at",
		).
		From(campaignsTable).
		PlaceholderFormat(squirrel.Dollar)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func deserializeCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	var platforms []string
	var businessContext, scheduleConfig []byte

	if err := row.Scan(
		&campaign.ID,
		&campaign.UserID,
		&campaign.Name,
		&campaign.Type,
		&campaign.Status,
		pq.Array(&platforms),
		pq.Array(&campaign.Modules),
		&businessContext,
		&scheduleConfig,
		&campaign.PostsPublished,
		&campaign.PostsRemaining,
		&campaign.LeadsGenerated,
		&campaign.EngagementRate,
		&campaign.StartedAt,
		&campaign.EndsAt,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	for _, p := range platforms {
		campaign.Platforms = append(campaign.Platforms, domain.Platform(p))
	}

	if len(businessContext) > 0 {
		if err := json.Unmarshal(businessContext, &campaign.BusinessContext); err != nil {
			return nil, err
		}
	}

	if len(scheduleConfig) > 0 {
		if err := json.Unmarshal(scheduleConfig, &campaign.ScheduleConfig); err != nil {
			return nil, err
		}
	}

	return campaign, nil
}

func platformStrings(platforms []domain.Platform) []string {
	out := make([]string, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, string(p))
	}
	return out
}
