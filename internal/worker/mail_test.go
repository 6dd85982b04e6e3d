package worker_test

import (
	"context"
	"errors"
	"testing"

	"yelpcamp/internal/worker"
	"yelpcamp/pkg/logger"
	"yelpcamp/pkg/mailer"
	mockmailer "yelpcamp/pkg/mailer/mock"
	"yelpcamp/pkg/serrors"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, msg mailer.Message) *river.Job[mailer.JobArgs] {
	return &river.Job[mailer.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   mailer.NewJob(msg, 3),
	}
}

var confirmation = mailer.Message{
	To:      "carol@example.com",
	Subject: "Your password has been changed",
	Body:    "Hello",
}

func TestMailWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mockmailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), confirmation).Return(nil)

	require.NoError(t, worker.NewMailWorker(m).Work(context.Background(), makeJob(1, confirmation)))
}

func TestMailWorker_Work_TransientErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mockmailer.NewMockMailer(ctrl)
	sendErr := serrors.Wrap(serrors.ErrExternalService, errors.New("connection refused"), "could not send")
	m.EXPECT().Send(gomock.Any(), confirmation).Return(sendErr)

	err := worker.NewMailWorker(m).Work(context.Background(), makeJob(2, confirmation))
	require.ErrorIs(t, err, sendErr)

	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestMailWorker_Work_MalformedMessageCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mockmailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrBadRequest, "invalid recipient address"))

	err := worker.NewMailWorker(m).Work(context.Background(), makeJob(3, mailer.Message{To: "@@"}))
	require.Error(t, err)

	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestMailWorker_Timeout(t *testing.T) {
	w := worker.NewMailWorker(nil)
	require.Positive(t, w.Timeout(makeJob(4, confirmation)))
}
