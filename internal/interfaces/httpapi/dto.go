package httpapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/gfoot/sportrate/internal/domain/leaderboard"
	"github.com/gfoot/sportrate/internal/domain/rating"
	"github.com/gfoot/sportrate/internal/domain/vote"
	"github.com/gfoot/sportrate/internal/usecase"
)

type leaderboardResponse struct {
	BallonOr []leaderboardEntryDTO `json:"ballonOr"`
	Stats    globalStatsDTO        `json:"stats"`
	Filters  resolvedFiltersDTO    `json:"filters"`
}

type leaderboardEntryDTO struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	NormalizedKey string            `json:"normalizedKey"`
	Positions     []string          `json:"positions"`
	Teams         []string          `json:"teams"`
	Sport         string            `json:"sport"`
	AvgRating     float64           `json:"avgRating"`
	TotalRatings  int               `json:"totalRatings"`
	TotalMatches  int               `json:"totalMatches"`
	BestMatch     *bestMatchDTO     `json:"bestMatch"`
	RecentMatches []recentMatchDTO  `json:"recentMatches"`
	RatingHistory []monthlyPointDTO `json:"ratingHistory"`
	TeamBreakdown []teamStandingDTO `json:"teamBreakdown"`
}

type bestMatchDTO struct {
	MatchID     string  `json:"matchId"`
	Rating      float64 `json:"rating"`
	HomeTeam    string  `json:"homeTeam"`
	AwayTeam    string  `json:"awayTeam"`
	Date        string  `json:"date"`
	Competition string  `json:"competition"`
	Team        string  `json:"team"`
}

type recentMatchDTO struct {
	MatchID     string  `json:"matchId"`
	Rating      float64 `json:"rating"`
	Comment     string  `json:"comment,omitempty"`
	HomeTeam    string  `json:"homeTeam"`
	AwayTeam    string  `json:"awayTeam"`
	Date        string  `json:"date"`
	Competition string  `json:"competition"`
	Team        string  `json:"team"`
}

type monthlyPointDTO struct {
	Month      string  `json:"month"`
	AvgRating  float64 `json:"avgRating"`
	MatchCount int     `json:"matchCount"`
}

type teamStandingDTO struct {
	Team        string  `json:"team"`
	AvgRating   float64 `json:"avgRating"`
	MatchCount  int     `json:"matchCount"`
	RatingCount int     `json:"ratingCount"`
}

type globalStatsDTO struct {
	TotalPlayers    int     `json:"totalPlayers"`
	TotalRatings    int     `json:"totalRatings"`
	TotalMatches    int     `json:"totalMatches"`
	AvgRatingGlobal float64 `json:"avgRatingGlobal"`
	TopRating       float64 `json:"topRating"`
	SportBreakdown  []sportBreakdownDTO `json:"sportBreakdown"`
	FusionStats     fusionStatsDTO      `json:"fusionStats"`
}

type sportBreakdownDTO struct {
	Sport        string  `json:"sport"`
	PlayerCount  int     `json:"playerCount"`
	AvgRating    float64 `json:"avgRating"`
	TotalRatings int     `json:"totalRatings"`
}

type fusionStatsDTO struct {
	OriginalPlayers int `json:"originalPlayers"`
	FusedPlayers    int `json:"fusedPlayers"`
	FusionReduction int `json:"fusionReduction"`
}

type resolvedFiltersDTO struct {
	Sport          string `json:"sport"`
	Position       string `json:"position"`
	Period         string `json:"period"`
	MinMatches     int    `json:"minMatches"`
	Limit          int    `json:"limit"`
	PlayersOnly    bool   `json:"playersOnly"`
	ExcludeCoaches bool   `json:"excludeCoaches"`
	ExcludeF1      bool   `json:"excludeF1"`
	IsF1           bool   `json:"isF1"`
}

func toLeaderboardResponse(board usecase.Leaderboard) leaderboardResponse {
	entries := make([]leaderboardEntryDTO, 0, len(board.Entries))
	for _, entry := range board.Entries {
		entries = append(entries, toLeaderboardEntryDTO(entry))
	}

	return leaderboardResponse{
		BallonOr: entries,
		Stats:    toGlobalStatsDTO(board.Stats),
		Filters:  toResolvedFiltersDTO(board.Filters),
	}
}

func toLeaderboardEntryDTO(entry leaderboard.Entry) leaderboardEntryDTO {
	dto := leaderboardEntryDTO{
		ID:            entry.ID,
		Name:          entry.Name,
		NormalizedKey: entry.NormalizedKey,
		Positions:     emptyIfNil(entry.Positions),
		Teams:         emptyIfNil(entry.Teams),
		Sport:         string(entry.Sport),
		AvgRating:     entry.AvgRating,
		TotalRatings:  entry.TotalRatings,
		TotalMatches:  entry.TotalMatches,
		RecentMatches: make([]recentMatchDTO, 0, len(entry.RecentMatches)),
		RatingHistory: make([]monthlyPointDTO, 0, len(entry.RatingHistory)),
		TeamBreakdown: make([]teamStandingDTO, 0, len(entry.TeamBreakdown)),
	}

	if entry.BestMatch.MatchID != "" {
		dto.BestMatch = &bestMatchDTO{
			MatchID:     entry.BestMatch.MatchID,
			Rating:      entry.BestMatch.Score,
			HomeTeam:    entry.BestMatch.HomeTeam,
			AwayTeam:    entry.BestMatch.AwayTeam,
			Date:        formatDate(entry.BestMatch.Date),
			Competition: entry.BestMatch.Competition,
			Team:        entry.BestMatch.Team,
		}
	}

	for _, recent := range entry.RecentMatches {
		dto.RecentMatches = append(dto.RecentMatches, recentMatchDTO{
			MatchID:     recent.MatchID,
			Rating:      recent.Score,
			Comment:     recent.Comment,
			HomeTeam:    recent.HomeTeam,
			AwayTeam:    recent.AwayTeam,
			Date:        formatDate(recent.Date),
			Competition: recent.Competition,
			Team:        recent.Team,
		})
	}

	for _, point := range entry.RatingHistory {
		dto.RatingHistory = append(dto.RatingHistory, monthlyPointDTO{
			Month:      point.Month,
			AvgRating:  point.AvgRating,
			MatchCount: point.MatchCount,
		})
	}

	for _, standing := range entry.TeamBreakdown {
		dto.TeamBreakdown = append(dto.TeamBreakdown, teamStandingDTO{
			Team:        standing.Team,
			AvgRating:   standing.AvgRating,
			MatchCount:  standing.MatchCount,
			RatingCount: standing.RatingCount,
		})
	}

	return dto
}

func toGlobalStatsDTO(stats leaderboard.GlobalStats) globalStatsDTO {
	breakdown := make([]sportBreakdownDTO, 0, len(stats.SportBreakdown))
	for _, item := range stats.SportBreakdown {
		breakdown = append(breakdown, sportBreakdownDTO{
			Sport:        string(item.Sport),
			PlayerCount:  item.PlayerCount,
			AvgRating:    item.AvgRating,
			TotalRatings: item.TotalRatings,
		})
	}

	return globalStatsDTO{
		TotalPlayers:    stats.TotalPlayers,
		TotalRatings:    stats.TotalRatings,
		TotalMatches:    stats.TotalMatches,
		AvgRatingGlobal: stats.AvgRating,
		TopRating:       stats.TopRating,
		SportBreakdown:  breakdown,
		FusionStats: fusionStatsDTO{
			OriginalPlayers: stats.Fusion.OriginalCount,
			FusedPlayers:    stats.Fusion.FusedCount,
			FusionReduction: stats.Fusion.Reduction,
		},
	}
}

func toResolvedFiltersDTO(filters usecase.ResolvedFilters) resolvedFiltersDTO {
	return resolvedFiltersDTO{
		Sport:          filters.Sport,
		Position:       filters.Position,
		Period:         string(filters.Period),
		MinMatches:     filters.MinSamples,
		Limit:          filters.Limit,
		PlayersOnly:    filters.PlayersOnly,
		ExcludeCoaches: filters.ExcludeCoaches,
		ExcludeF1:      filters.ExcludeDrivers,
		IsF1:           filters.DriverBoard,
	}
}

type manOfMatchResponse struct {
	MatchID      string         `json:"matchId"`
	TotalVotes   int            `json:"totalVotes"`
	Players      []voteTallyDTO `json:"players"`
	Leader       *voteTallyDTO  `json:"leader"`
	Votes        []voteDTO      `json:"votes"`
	CommunityAvg float64        `json:"communityAvg"`
	RatingCount  int            `json:"ratingCount"`
}

type voteTallyDTO struct {
	PlayerName string   `json:"playerName"`
	Team       string   `json:"team,omitempty"`
	Votes      int      `json:"votes"`
	Percentage float64  `json:"percentage"`
	Comments   []string `json:"comments"`
}

type voteDTO struct {
	ID         string `json:"id"`
	MatchID    string `json:"matchId"`
	VoterID    string `json:"voterId"`
	VoterName  string `json:"voterName"`
	PlayerName string `json:"playerName"`
	Team       string `json:"team,omitempty"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

func toManOfMatchResponse(result usecase.ManOfMatch) manOfMatchResponse {
	response := manOfMatchResponse{
		MatchID:      result.MatchID,
		TotalVotes:   result.Tally.TotalVotes,
		Players:      make([]voteTallyDTO, 0, len(result.Tally.Players)),
		Votes:        make([]voteDTO, 0, len(result.Votes)),
		CommunityAvg: result.CommunityAvg,
		RatingCount:  result.RatingCount,
	}

	for _, player := range result.Tally.Players {
		response.Players = append(response.Players, toVoteTallyDTO(player))
	}
	if result.Tally.Leader != nil {
		leader := toVoteTallyDTO(*result.Tally.Leader)
		response.Leader = &leader
	}
	for _, item := range result.Votes {
		response.Votes = append(response.Votes, toVoteDTO(item))
	}

	return response
}

func toVoteTallyDTO(tally vote.PlayerTally) voteTallyDTO {
	comments := tally.Comments
	if comments == nil {
		comments = []string{}
	}
	return voteTallyDTO{
		PlayerName: tally.PlayerName,
		Team:       tally.Team,
		Votes:      tally.Votes,
		Percentage: tally.Percentage,
		Comments:   comments,
	}
}

func toVoteDTO(item vote.Vote) voteDTO {
	return voteDTO{
		ID:         item.ID,
		MatchID:    item.MatchID,
		VoterID:    item.VoterID,
		VoterName:  item.VoterName,
		PlayerName: item.PlayerName,
		Team:       item.Team,
		Comment:    item.Comment,
		CreatedAt:  item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type ratingSubmissionDTO struct {
	PlayerName  string  `json:"playerName" validate:"required"`
	Team        string  `json:"team" validate:"required"`
	Position    string  `json:"position"`
	Sport       string  `json:"sport" validate:"required"`
	Score       float64 `json:"score" validate:"gte=0,lte=10"`
	Comment     string  `json:"comment"`
	MatchID     string  `json:"matchId" validate:"required"`
	HomeTeam    string  `json:"homeTeam"`
	AwayTeam    string  `json:"awayTeam"`
	MatchDate   string  `json:"matchDate"`
	Competition string  `json:"competition"`
}

func (dto ratingSubmissionDTO) toRecord() (rating.Rating, error) {
	matchDate := time.Time{}
	if strings.TrimSpace(dto.MatchDate) != "" {
		parsed, err := parseDate(dto.MatchDate)
		if err != nil {
			return rating.Rating{}, fmt.Errorf("invalid match date %q", dto.MatchDate)
		}
		matchDate = parsed
	}

	sport := rating.Sport(strings.ToUpper(strings.TrimSpace(dto.Sport)))

	return rating.Rating{
		DisplayName: dto.PlayerName,
		Team:        dto.Team,
		Position:    dto.Position,
		Sport:       sport,
		Score:       dto.Score,
		Comment:     dto.Comment,
		Match: rating.Match{
			ID:          dto.MatchID,
			HomeTeam:    dto.HomeTeam,
			AwayTeam:    dto.AwayTeam,
			Date:        matchDate,
			Competition: dto.Competition,
			Sport:       sport,
		},
	}, nil
}

func parseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

type castVoteDTO struct {
	VoterID    string `json:"voterId" validate:"required"`
	VoterName  string `json:"voterName" validate:"required"`
	PlayerName string `json:"playerName" validate:"required"`
	Team       string `json:"team"`
	Comment    string `json:"comment"`
}

type retractVoteDTO struct {
	VoterID string `json:"voterId" validate:"required"`
}

type ingestRatingsDTO struct {
	Ratings []ratingSubmissionDTO `json:"ratings" validate:"required,min=1,dive"`
}
