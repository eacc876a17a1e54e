package mailer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-match-api/infrastructure/integrator/mailer"
	mailermocks "github.com/vfg2006/influencer-match-api/infrastructure/integrator/mailer/mocks"
	"github.com/vfg2006/influencer-match-api/infrastructure/integrator/youtube"
	youtubemocks "github.com/vfg2006/influencer-match-api/infrastructure/integrator/youtube/mocks"
	repomocks "github.com/vfg2006/influencer-match-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-match-api/internal/config"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/profiling"
	"github.com/wneessen/go-mail"
	"go.uber.org/mock/gomock"
)

// Criador resolvido pelo YouTube recebe o contato no email publicado na descrição do canal
func TestMailer_DeliverToResolvedCreator(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := youtubemocks.NewMockClient(ctrl)
	client.EXPECT().GetChannel(gomock.Any(), "UC_tech_001").Return(&youtube.Channel{
		ID:          "UC_tech_001",
		Title:       "Tech Reviewer Pro",
		Description: "Reviews semanais. Parcerias: Negocios@TechReviewer.com",
		Subscribers: 250_000,
	}, nil)

	creatorRepository := repomocks.NewMockCreatorRepository(ctrl)
	creatorRepository.EXPECT().GetByExternalID(gomock.Any(), "UC_tech_001").Return(nil, nil)
	creatorRepository.EXPECT().
		InsertIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, creator *domain.Creator) (*domain.Creator, error) {
			return creator, nil
		})

	resolver := profiling.NewService(creatorRepository, youtube.New(client, nil, 0))
	creator, err := resolver.Resolve(ctx, domain.ChannelCandidate{ExternalID: "UC_tech_001", Title: "Tech Reviewer Pro"})
	require.NoError(t, err)
	require.NotNil(t, creator.Email)

	sender := mailermocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *mail.Msg) error {
			recipients, err := msg.GetRecipients()
			require.NoError(t, err)
			assert.Equal(t, []string{"negocios@techreviewer.com"}, recipients)
			return nil
		}).Times(1)

	m := mailer.New(sender, nil, config.SMTP{Host: "smtp.acme.com", Port: 587, From: "parcerias@acme.com", FromName: "Acme"})
	delivered, err := m.Deliver(ctx, domain.Outreach{
		Match:    &domain.Match{ID: "M001", CreatorID: creator.ID, FitScore: 0.8, PriceEstimate: 900},
		Creator:  creator,
		Offering: &domain.Offering{ID: "OFF001", Name: "Smartphone X"},
		Brand:    &domain.Brand{ID: "BRD001", Name: "Acme", Email: "contato@acme.com"},
		Campaign: &domain.Campaign{ID: "CMP001"},
	})
	require.NoError(t, err)
	assert.True(t, delivered)
}
