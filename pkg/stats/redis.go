package stats

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// RedisStats keeps monthly pledge counters per campaign.
// Inside docker can be connected as:
//      docker exec -it redis redis-cli
// Get top campaigns by number of pledges:
//      127.0.0.1:6379> zrevrange stats/top/2026/10/pledges 0 10 withscores
// Query specific campaign stats:
//      127.0.0.1:6379> hgetall "stats/2026/10/c1"
type RedisStats struct {
	client *redis.Client
	now    func() time.Time
}

// CampaignStat is a monthly counter value of a campaign
type CampaignStat struct {
	CampaignID string `json:"campaign_id"`
	Count      int64  `json:"count"`
}

func NewRedisStats(redisURL string) (*RedisStats, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping().Err(); err != nil {
		return nil, err
	}

	return &RedisStats{client: client, now: time.Now}, nil
}

// Inc bumps campaign's metric counter and its rank among campaigns for current month.
// Amount is accumulated next to the counter under "<metric>_amount".
func (r RedisStats) Inc(metric, campaignID string, amount decimal.Decimal) (int64, error) {
	now := r.now().UTC()

	key := r.makeKey(now, campaignID)
	top := r.makeTop(now, metric)

	var cmd *redis.IntCmd
	_, err := r.client.TxPipelined(func(p redis.Pipeliner) error {
		cmd = p.HIncrBy(key, metric, 1)
		p.HIncrByFloat(key, metric+"_amount", amount.InexactFloat64())
		p.ZIncrBy(top, 1, campaignID)
		return nil
	})

	if err != nil {
		return 0, errors.Wrapf(err, "failed to increment %s for campaign %s", metric, campaignID)
	}

	return cmd.Result()
}

func (r RedisStats) Get(metric, campaignID string) (int64, error) {
	key := r.makeKey(r.now().UTC(), campaignID)
	count, err := r.client.HGet(key, metric).Int64()
	if err == redis.Nil {
		return 0, nil
	}

	return count, err
}

// Top returns up to limit campaigns with the highest metric value this month.
func (r RedisStats) Top(metric string, limit int) ([]CampaignStat, error) {
	top := r.makeTop(r.now().UTC(), metric)

	zrange, err := r.client.ZRevRangeWithScores(top, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	list := make([]CampaignStat, 0, len(zrange))
	for _, x := range zrange {
		list = append(list, CampaignStat{
			CampaignID: x.Member.(string),
			Count:      int64(x.Score),
		})
	}

	return list, nil
}

func (r RedisStats) makeKey(now time.Time, campaignID string) string {
	return fmt.Sprintf("stats/%d/%d/%s", now.Year(), now.Month(), campaignID)
}

func (r RedisStats) makeTop(now time.Time, metric string) string {
	return fmt.Sprintf("stats/top/%d/%d/%s", now.Year(), now.Month(), metric)
}

func (r RedisStats) Close() error {
	return r.client.Close()
}
