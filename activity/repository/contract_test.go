package repository

import (
	"context"
	"math"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ActivityRepositorySuite holds the behaviour every driver must share. Driver
// suites embed it and set repo in SetupTest on an empty store.
type ActivityRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	repo domain.Repository
	base time.Time
}

func (suite *ActivityRepositorySuite) seed(userID string, action domain.Action, offset time.Duration) *domain.Activity {
	activity := &domain.Activity{
		UserID:    userID,
		Action:    action,
		Timestamp: suite.base.Add(offset),
		Status:    domain.StatusSuccess,
	}
	err := suite.repo.CreateActivity(suite.ctx, activity)
	suite.Require().NoError(err, "create activity")
	return activity
}

func (suite *ActivityRepositorySuite) ids(activities []*domain.Activity) []bson.ObjectID {
	out := make([]bson.ObjectID, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.ID)
	}
	return out
}

func (suite *ActivityRepositorySuite) TestCreateAndGetActivity() {
	activity := &domain.Activity{
		UserID:       "user123",
		Action:       domain.ActionLogin,
		Timestamp:    suite.base,
		IPAddress:    "10.0.0.1",
		UserAgent:    "curl/8.0",
		Details:      map[string]any{"browser": "firefox"},
		ResourceType: "session",
		ResourceID:   "s-1",
		Status:       domain.StatusFailure,
	}
	err := suite.repo.CreateActivity(suite.ctx, activity)
	suite.Require().NoError(err, "create activity")
	suite.False(activity.ID.IsZero(), "id should be assigned")

	got, err := suite.repo.GetActivity(suite.ctx, activity.ID)
	suite.Require().NoError(err, "get activity")
	suite.Equal(activity.ID, got.ID)
	suite.Equal("user123", got.UserID)
	suite.Equal(domain.ActionLogin, got.Action)
	suite.True(suite.base.Equal(got.Timestamp), "timestamp should round trip")
	suite.Equal("10.0.0.1", got.IPAddress)
	suite.Equal("curl/8.0", got.UserAgent)
	suite.Equal("firefox", got.Details["browser"])
	suite.Equal("session", got.ResourceType)
	suite.Equal("s-1", got.ResourceID)
	suite.Equal(domain.StatusFailure, got.Status)
}

func (suite *ActivityRepositorySuite) TestGetActivityNotFound() {
	_, err := suite.repo.GetActivity(suite.ctx, bson.NewObjectID())
	suite.ErrorIs(err, domain.ErrNotFound)
}

func (suite *ActivityRepositorySuite) TestQueryOrdersByTimestampThenInsertion() {
	oldest := suite.seed("u1", domain.ActionLogin, -2*time.Hour)
	tieFirst := suite.seed("u1", domain.ActionLogout, -time.Hour)
	tieSecond := suite.seed("u2", domain.ActionLogin, -time.Hour)
	newest := suite.seed("u2", domain.ActionOther, 0)

	opt := &domain.QueryActivityOptions{Filter: domain.NoFilter(), Limit: 10}
	err := suite.repo.QueryActivities(suite.ctx, opt)
	suite.Require().NoError(err, "query activities")
	suite.Equal(int64(4), opt.Total)
	suite.Equal([]bson.ObjectID{newest.ID, tieFirst.ID, tieSecond.ID, oldest.ID}, suite.ids(opt.Result))
}

func (suite *ActivityRepositorySuite) TestQuerySkipAndLimit() {
	for i := 0; i < 5; i++ {
		suite.seed("u1", domain.ActionLogin, time.Duration(i)*time.Minute)
	}

	opt := &domain.QueryActivityOptions{Filter: domain.NoFilter(), Skip: 2, Limit: 2}
	err := suite.repo.QueryActivities(suite.ctx, opt)
	suite.Require().NoError(err, "query page")
	suite.Equal(int64(5), opt.Total)
	suite.Require().Len(opt.Result, 2)
	suite.True(suite.base.Add(2 * time.Minute).Equal(opt.Result[0].Timestamp))
	suite.True(suite.base.Add(time.Minute).Equal(opt.Result[1].Timestamp))

	past := &domain.QueryActivityOptions{Filter: domain.NoFilter(), Skip: 10, Limit: 2}
	err = suite.repo.QueryActivities(suite.ctx, past)
	suite.Require().NoError(err, "query past the end")
	suite.Equal(int64(5), past.Total)
	suite.Empty(past.Result)

	far := &domain.QueryActivityOptions{Filter: domain.NoFilter(), Skip: math.MaxInt64, Limit: math.MaxInt64}
	err = suite.repo.QueryActivities(suite.ctx, far)
	suite.Require().NoError(err, "query with saturated skip")
	suite.Equal(int64(5), far.Total)
	suite.Empty(far.Result)

	all := &domain.QueryActivityOptions{Filter: domain.NoFilter(), Skip: 3, Limit: math.MaxInt64}
	err = suite.repo.QueryActivities(suite.ctx, all)
	suite.Require().NoError(err, "query with huge limit")
	suite.Len(all.Result, 2)
}

func (suite *ActivityRepositorySuite) TestQueryFilters() {
	suite.seed("alice", domain.ActionLogin, -3*time.Hour)
	suite.seed("alice", domain.ActionLogout, -2*time.Hour)
	suite.seed("bob", domain.ActionLogin, -time.Hour)

	byUser := &domain.QueryActivityOptions{Filter: domain.ByUser("alice"), Limit: 10}
	suite.Require().NoError(suite.repo.QueryActivities(suite.ctx, byUser))
	suite.Equal(int64(2), byUser.Total)
	for _, a := range byUser.Result {
		suite.Equal("alice", a.UserID)
	}

	byAction := &domain.QueryActivityOptions{Filter: domain.ByAction(domain.ActionLogin), Limit: 10}
	suite.Require().NoError(suite.repo.QueryActivities(suite.ctx, byAction))
	suite.Equal(int64(2), byAction.Total)
	for _, a := range byAction.Result {
		suite.Equal(domain.ActionLogin, a.Action)
	}

	none := &domain.QueryActivityOptions{Filter: domain.ByUser("carol"), Limit: 10}
	suite.Require().NoError(suite.repo.QueryActivities(suite.ctx, none))
	suite.Zero(none.Total)
	suite.Empty(none.Result)
}

func (suite *ActivityRepositorySuite) TestQueryDateRangeIsInclusive() {
	start := suite.seed("u1", domain.ActionLogin, -2*time.Hour)
	middle := suite.seed("u1", domain.ActionLogin, -time.Hour)
	end := suite.seed("u1", domain.ActionLogin, 0)
	suite.seed("u1", domain.ActionLogin, -3*time.Hour)
	suite.seed("u1", domain.ActionLogin, time.Hour)

	opt := &domain.QueryActivityOptions{
		Filter: domain.ByDateRange(start.Timestamp, end.Timestamp),
		Limit:  10,
	}
	err := suite.repo.QueryActivities(suite.ctx, opt)
	suite.Require().NoError(err, "query date range")
	suite.Equal(int64(3), opt.Total)
	suite.Equal([]bson.ObjectID{end.ID, middle.ID, start.ID}, suite.ids(opt.Result))
}

func (suite *ActivityRepositorySuite) TestQueryNilOptions() {
	err := suite.repo.QueryActivities(suite.ctx, nil)
	suite.ErrorIs(err, domain.ErrNilQueryInput)
}

func (suite *ActivityRepositorySuite) TestDeleteActivitiesBefore() {
	old := suite.seed("u1", domain.ActionLogin, -48*time.Hour)
	suite.seed("u1", domain.ActionLogin, -47*time.Hour)
	atCutoff := suite.seed("u1", domain.ActionLogin, -24*time.Hour)
	fresh := suite.seed("u1", domain.ActionLogin, 0)

	deleted, err := suite.repo.DeleteActivitiesBefore(suite.ctx, atCutoff.Timestamp)
	suite.Require().NoError(err, "delete activities")
	suite.Equal(int64(2), deleted)

	_, err = suite.repo.GetActivity(suite.ctx, old.ID)
	suite.ErrorIs(err, domain.ErrNotFound)

	opt := &domain.QueryActivityOptions{Filter: domain.NoFilter(), Limit: 10}
	suite.Require().NoError(suite.repo.QueryActivities(suite.ctx, opt))
	suite.Equal([]bson.ObjectID{fresh.ID, atCutoff.ID}, suite.ids(opt.Result))

	deleted, err = suite.repo.DeleteActivitiesBefore(suite.ctx, atCutoff.Timestamp)
	suite.Require().NoError(err, "delete again")
	suite.Zero(deleted)
}
