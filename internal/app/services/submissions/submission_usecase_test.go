package submissions

import (
	"context"
	"errors"
	"testing"
	"time"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/protodto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeQuestionClient struct {
	questions []protodto.Question
	err       error
}

func (f *fakeQuestionClient) FindByFormID(ctx context.Context, token, formID string) ([]protodto.Question, error) {
	return f.questions, f.err
}

type fakeFormInstanceClient struct {
	created  []protodto.CreateFormInstanceRequest
	instance *protodto.FormInstance
	err      error
}

func (f *fakeFormInstanceClient) CreateFormInstance(ctx context.Context, token string, request *protodto.CreateFormInstanceRequest) (*protodto.FormInstance, error) {
	f.created = append(f.created, *request)
	if f.err != nil {
		return nil, f.err
	}
	return f.instance, nil
}

type fakeResponseClient struct {
	submitted    []protodto.CreateResponseRequest
	failQuestion map[string]error
}

func (f *fakeResponseClient) CreateResponse(ctx context.Context, token string, request *protodto.CreateResponseRequest) error {
	if err := f.failQuestion[request.QuestionID]; err != nil {
		return err
	}
	f.submitted = append(f.submitted, *request)
	return nil
}

type fakeJournalRepository struct {
	entries []models.SubmissionJournalEntry
	err     error
}

func (f *fakeJournalRepository) CreateEntry(ctx context.Context, entry *models.SubmissionJournalEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeJournalRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.SubmissionJournalEntry, error) {
	return f.entries, f.err
}

type fakeEventPublisher struct {
	events []contracts.FormSubmittedEvent
	err    error
}

func (f *fakeEventPublisher) PublishFormSubmitted(ctx context.Context, event *contracts.FormSubmittedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, *event)
	return nil
}

type fakeTracker struct {
	invalidated [][2]string
}

func (f *fakeTracker) RespondedSet(ctx context.Context, token, protocolID, patientID string) (map[string]bool, error) {
	return nil, nil
}

func (f *fakeTracker) IsCompleted(ctx context.Context, token, protocolID, patientID, formID string, occurrenceIndex int) (bool, error) {
	return false, nil
}

func (f *fakeTracker) Invalidate(ctx context.Context, protocolID, patientID string) error {
	f.invalidated = append(f.invalidated, [2]string{protocolID, patientID})
	return nil
}

type usecaseFixture struct {
	questions *fakeQuestionClient
	instances *fakeFormInstanceClient
	responses *fakeResponseClient
	journal   *fakeJournalRepository
	publisher *fakeEventPublisher
	tracker   *fakeTracker
	usecase   SubmissionUsecase
}

func newFixture(questions []protodto.Question) *usecaseFixture {
	f := &usecaseFixture{
		questions: &fakeQuestionClient{questions: questions},
		instances: &fakeFormInstanceClient{instance: &protodto.FormInstance{ID: "instance-1"}},
		responses: &fakeResponseClient{failQuestion: map[string]error{}},
		journal:   &fakeJournalRepository{},
		publisher: &fakeEventPublisher{},
		tracker:   &fakeTracker{},
	}
	uc := NewSubmissionUsecase(
		f.questions,
		f.instances,
		f.responses,
		f.journal,
		f.publisher,
		f.tracker,
		zap.NewNop(),
	).(*submissionUsecase)
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }
	f.usecase = uc
	return f
}

func submitRequest(answers ...requests.SubmitAnswer) *requests.SubmitForm {
	return &requests.SubmitForm{
		PatientID:         "patient-1",
		ProtocolID:        "proto-1",
		PatientProtocolID: "pp-1",
		ProtocolFormID:    "pf-1",
		FormID:            "form-1",
		ScheduledDate:     "2024-03-01",
		Answers:           answers,
	}
}

func TestSubmitForm(t *testing.T) {
	twoRequired := []protodto.Question{
		{ID: "q-1", FormID: "form-1", Type: protodto.QuestionTypeText, IsRequired: true},
		{ID: "q-2", FormID: "form-1", Type: protodto.QuestionTypeText, IsRequired: true},
	}

	t.Run("Missing Required Answer Fails Before Instance Creation", func(t *testing.T) {
		fixture := newFixture(twoRequired)

		_, err := fixture.usecase.SubmitForm(context.Background(), nil, submitRequest(
			requests.SubmitAnswer{QuestionID: "q-1", AnswerText: "hello"},
		))

		var missingErr *exceptions.MissingRequiredAnswersError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"q-2"}, missingErr.MissingQuestionIDs)
		assert.Empty(t, fixture.instances.created)
		assert.Empty(t, fixture.journal.entries)
	})

	t.Run("All Missing Required Answers Are Collected At Once", func(t *testing.T) {
		fixture := newFixture(twoRequired)

		_, err := fixture.usecase.SubmitForm(context.Background(), nil, submitRequest())

		var missingErr *exceptions.MissingRequiredAnswersError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"q-1", "q-2"}, missingErr.MissingQuestionIDs)
	})

	t.Run("Empty Answer Does Not Satisfy A Required Question", func(t *testing.T) {
		fixture := newFixture(twoRequired)

		_, err := fixture.usecase.SubmitForm(context.Background(), nil, submitRequest(
			requests.SubmitAnswer{QuestionID: "q-1", AnswerText: "hello"},
			requests.SubmitAnswer{QuestionID: "q-2", AnswerText: ""},
		))

		var missingErr *exceptions.MissingRequiredAnswersError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"q-2"}, missingErr.MissingQuestionIDs)
	})

	t.Run("Full Submission Succeeds Without Warning", func(t *testing.T) {
		fixture := newFixture(twoRequired)

		result, err := fixture.usecase.SubmitForm(context.Background(), nil, submitRequest(
			requests.SubmitAnswer{QuestionID: "q-1", AnswerText: "hello"},
			requests.SubmitAnswer{QuestionID: "q-2", AnswerText: "world"},
		))
		require.NoError(t, err)

		assert.Equal(t, "instance-1", result.FormInstance.ID)
		assert.Nil(t, result.Warning)
		require.Len(t, result.Outcomes, 2)
		for _, outcome := range result.Outcomes {
			assert.True(t, outcome.Succeeded)
		}
		require.Len(t, fixture.journal.entries, 1)
		require.Len(t, fixture.publisher.events, 1)
		assert.Empty(t, fixture.publisher.events[0].FailedQuestionIDs)
		assert.Equal(t, [][2]string{{"proto-1", "patient-1"}}, fixture.tracker.invalidated)
	})

	t.Run("Second Answer Failing Does Not Abort The Rest", func(t *testing.T) {
		questions := []protodto.Question{
			{ID: "q-1", FormID: "form-1", Type: protodto.QuestionTypeText, IsRequired: true},
			{ID: "q-2", FormID: "form-1", Type: protodto.QuestionTypeText, IsRequired: true},
			{ID: "q-3", FormID: "form-1", Type: protodto.QuestionTypeText, IsRequired: true},
		}
		fixture := newFixture(questions)
		fixture.responses.failQuestion["q-2"] = errors.New("backend hiccup")

		result, err := fixture.usecase.SubmitForm(context.Background(), nil, submitRequest(
			requests.SubmitAnswer{QuestionID: "q-1", AnswerText: "a"},
			requests.SubmitAnswer{QuestionID: "q-2", AnswerText: "b"},
			requests.SubmitAnswer{QuestionID: "q-3", AnswerText: "c"},
		))
		require.NoError(t, err)

		require.Len(t, result.Outcomes, 3)
		assert.True(t, result.Outcomes[0].Succeeded)
		assert.False(t, result.Outcomes[1].Succeeded)
		assert.True(t, result.Outcomes[2].Succeeded)

		require.NotNil(t, result.Warning)
		assert.Equal(t, []string{"q-2"}, result.Warning.FailedQuestionIDs)
		assert.Equal(t, "instance-1", result.Warning.FormInstanceID)

		require.Len(t, fixture.responses.submitted, 2)
		require.Len(t, fixture.publisher.events, 1)
		assert.Equal(t, []string{"q-2"}, fixture.publisher.events[0].FailedQuestionIDs)
	})

	t.Run("Instance Creation Failure Aborts The Submission", func(t *testing.T) {
		fixture := newFixture(twoRequired)
		fixture.instances.err = errors.New("backend down")

		_, err := fixture.usecase.SubmitForm(context.Background(), nil, submitRequest(
			requests.SubmitAnswer{QuestionID: "q-1", AnswerText: "hello"},
			requests.SubmitAnswer{QuestionID: "q-2", AnswerText: "world"},
		))

		assert.Error(t, err)
		assert.Empty(t, fixture.responses.submitted)
		assert.Empty(t, fixture.journal.entries)
	})

	t.Run("Journal Failure Does Not Fail The Submission", func(t *testing.T) {
		fixture := newFixture(twoRequired)
		fixture.journal.err = errors.New("mongo down")

		result, err := fixture.usecase.SubmitForm(context.Background(), nil, submitRequest(
			requests.SubmitAnswer{QuestionID: "q-1", AnswerText: "hello"},
			requests.SubmitAnswer{QuestionID: "q-2", AnswerText: "world"},
		))
		require.NoError(t, err)
		assert.Nil(t, result.Warning)
	})

	t.Run("Publish Failure Does Not Fail The Submission", func(t *testing.T) {
		fixture := newFixture(twoRequired)
		fixture.publisher.err = errors.New("broker down")

		_, err := fixture.usecase.SubmitForm(context.Background(), nil, submitRequest(
			requests.SubmitAnswer{QuestionID: "q-1", AnswerText: "hello"},
			requests.SubmitAnswer{QuestionID: "q-2", AnswerText: "world"},
		))
		require.NoError(t, err)
	})

	t.Run("Option Answer Satisfies A Required Choice Question", func(t *testing.T) {
		optionID := "opt-1"
		questions := []protodto.Question{
			{ID: "q-1", FormID: "form-1", Type: protodto.QuestionTypeSingleChoice, IsRequired: true,
				Options: []protodto.Option{{ID: optionID, TextEs: "Sí"}}},
		}
		fixture := newFixture(questions)

		result, err := fixture.usecase.SubmitForm(context.Background(), nil, submitRequest(
			requests.SubmitAnswer{QuestionID: "q-1", AnswerOptionID: &optionID},
		))
		require.NoError(t, err)
		assert.Nil(t, result.Warning)
	})
}
