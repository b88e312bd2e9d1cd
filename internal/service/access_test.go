package service

import (
	"context"
	"testing"

	"github.com/errorkid/examquizbot.git/internal/config"
	mock_service "github.com/errorkid/examquizbot.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testOwnerID = int64(99)

func newAccessServiceMock(ctrl *gomock.Controller, cfg config.AccessConfig,
	setupMock func(*mock_service.MockGateAPII, *mock_service.MockRepositoryI)) *AccessS {
	gate := mock_service.NewMockGateAPII(ctrl)
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(gate, repo)
	}
	return NewAccessService(gate, repo, testOwnerID, cfg, zap.NewNop())
}

func gatedConfig(failOpen bool) config.AccessConfig {
	return config.AccessConfig{
		FailOpen:    failOpen,
		MainChannel: "@examprep",
		Gates: map[string]config.GateConfig{
			"BSEB": {ChatID: -100111, Link: "https://t.me/bseb_group"},
		},
	}
}

func TestAccessS_IsAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID int64
		f      func(*mock_service.MockGateAPII, *mock_service.MockRepositoryI)
		want   bool
	}{
		{
			name:   "owner is always admin",
			userID: testOwnerID,
			want:   true,
		},
		{
			name:   "granted user",
			userID: 456,
			f: func(_ *mock_service.MockGateAPII, mr *mock_service.MockRepositoryI) {
				mr.EXPECT().IsAdmin(gomock.Any(), int64(456)).Return(true, nil)
			},
			want: true,
		},
		{
			name:   "lookup failure denies",
			userID: 456,
			f: func(_ *mock_service.MockGateAPII, mr *mock_service.MockRepositoryI) {
				mr.EXPECT().IsAdmin(gomock.Any(), int64(456)).Return(false, assert.AnError)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newAccessServiceMock(ctrl, gatedConfig(true), tt.f)
			assert.Equal(t, tt.want, s.IsAdmin(context.Background(), tt.userID))
		})
	}
}

func TestAccessS_VerifyGate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		failOpen bool
		f        func(*mock_service.MockGateAPII, *mock_service.MockRepositoryI)
		want     bool
	}{
		{
			name:     "member passes",
			category: "BSEB",
			failOpen: true,
			f: func(mg *mock_service.MockGateAPII, _ *mock_service.MockRepositoryI) {
				mg.EXPECT().IsChatMember(gomock.Any(), "-100111", int64(456)).Return(true, nil)
			},
			want: true,
		},
		{
			name:     "non-member blocked",
			category: "BSEB",
			failOpen: true,
			f: func(mg *mock_service.MockGateAPII, _ *mock_service.MockRepositoryI) {
				mg.EXPECT().IsChatMember(gomock.Any(), "-100111", int64(456)).Return(false, nil)
			},
			want: false,
		},
		{
			name:     "check failure passes when failing open",
			category: "BSEB",
			failOpen: true,
			f: func(mg *mock_service.MockGateAPII, _ *mock_service.MockRepositoryI) {
				mg.EXPECT().IsChatMember(gomock.Any(), "-100111", int64(456)).Return(false, assert.AnError)
			},
			want: true,
		},
		{
			name:     "check failure blocks when failing closed",
			category: "BSEB",
			failOpen: false,
			f: func(mg *mock_service.MockGateAPII, _ *mock_service.MockRepositoryI) {
				mg.EXPECT().IsChatMember(gomock.Any(), "-100111", int64(456)).Return(false, assert.AnError)
			},
			want: false,
		},
		{
			name:     "unknown category has no gate",
			category: "JEE",
			failOpen: false,
			want:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newAccessServiceMock(ctrl, gatedConfig(tt.failOpen), tt.f)
			assert.Equal(t, tt.want, s.VerifyGate(context.Background(), tt.category, 456))
		})
	}
}

func TestAccessS_VerifyMainChannel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newAccessServiceMock(ctrl, gatedConfig(true), func(mg *mock_service.MockGateAPII, _ *mock_service.MockRepositoryI) {
		mg.EXPECT().IsChatMember(gomock.Any(), "@examprep", int64(456)).Return(true, nil)
	})

	assert.True(t, s.VerifyMainChannel(context.Background(), 456))
}
