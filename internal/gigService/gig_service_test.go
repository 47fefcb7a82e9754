package gigs

import (
	"errors"
	"fmt"
	"testing"

	"gigboard/internal/marketerrors"
	model "gigboard/internal/models"
	"gigboard/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Tests CreateGig
func TestGigService_CreateGig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewGigService(mockRepo)

	tests := []struct {
		name          string
		ownerID       string
		title         string
		description   string
		budget        float64
		mockSetup     func()
		expectedError error
	}{
		{
			name:        "valid_gig",
			ownerID:     "owner1",
			title:       "Build landing page",
			description: "five sections, responsive",
			budget:      800,
			mockSetup: func() {
				mockRepo.EXPECT().CreateGig(gomock.Any()).Return(nil)
			},
		},
		{
			name:          "empty_owner",
			ownerID:       "",
			title:         "Build landing page",
			description:   "five sections",
			budget:        800,
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidInput,
		},
		{
			name:          "blank_title",
			ownerID:       "owner1",
			title:         "   ",
			description:   "five sections",
			budget:        800,
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidInput,
		},
		{
			name:          "zero_budget",
			ownerID:       "owner1",
			title:         "Build landing page",
			description:   "five sections",
			budget:        0,
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidInput,
		},
		{
			name:          "negative_budget",
			ownerID:       "owner1",
			title:         "Build landing page",
			description:   "five sections",
			budget:        -100,
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidInput,
		},
		{
			name:        "repo_failure",
			ownerID:     "owner1",
			title:       "Build landing page",
			description: "five sections",
			budget:      800,
			mockSetup: func() {
				mockRepo.EXPECT().CreateGig(gomock.Any()).Return(errors.New("store down"))
			},
			expectedError: nil, // wrapped repo error, no sentinel to match
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			gig, err := service.CreateGig(tc.ownerID, tc.title, tc.description, tc.budget)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			if tc.name == "repo_failure" {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, gig.GigID)
			require.Equal(t, model.GigOpen, gig.Status)
			require.Equal(t, tc.ownerID, gig.OwnerID)
			require.False(t, gig.CreatedAt.IsZero())
		})
	}
}

// Tests ListOpen and GetGig
func TestGigService_Queries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewGigService(mockRepo)

	mockRepo.EXPECT().ListOpenGigs("landing").Return([]model.Gig{{GigID: "gig1"}}, nil)
	gigList, err := service.ListOpen("landing")
	require.NoError(t, err)
	require.Len(t, gigList, 1)

	mockRepo.EXPECT().GetGig("gig1").Return(model.Gig{GigID: "gig1"}, nil)
	gig, err := service.GetGig("gig1")
	require.NoError(t, err)
	require.Equal(t, "gig1", gig.GigID)

	_, err = service.GetGig("")
	require.ErrorIs(t, err, marketerrors.ErrInvalidInput)

	mockRepo.EXPECT().GetGig("missing").
		Return(model.Gig{}, fmt.Errorf("get gig: %w", marketerrors.ErrGigNotFound))
	_, err = service.GetGig("missing")
	require.ErrorIs(t, err, marketerrors.ErrGigNotFound)
}
