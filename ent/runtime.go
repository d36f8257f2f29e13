// Code generated by ent, DO NOT EDIT.

package ent

import (
	"soliddojo/ent/attemptevent"
	"soliddojo/ent/llmrequestevent"
	"soliddojo/ent/runevent"
	"soliddojo/ent/schema"
	"soliddojo/ent/snapshot"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescRunID is the schema descriptor for run_id field.
	attempteventDescRunID := attempteventFields[0].Descriptor()
	// attemptevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	attemptevent.RunIDValidator = attempteventDescRunID.Validators[0].(func(string) error)
	// attempteventDescQuizName is the schema descriptor for quiz_name field.
	attempteventDescQuizName := attempteventFields[1].Descriptor()
	// attemptevent.QuizNameValidator is a validator for the "quiz_name" field. It is called by the builders before save.
	attemptevent.QuizNameValidator = attempteventDescQuizName.Validators[0].(func(string) error)
	// attempteventDescPrinciple is the schema descriptor for principle field.
	attempteventDescPrinciple := attempteventFields[2].Descriptor()
	// attemptevent.PrincipleValidator is a validator for the "principle" field. It is called by the builders before save.
	attemptevent.PrincipleValidator = attempteventDescPrinciple.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	runeventMixin := schema.RunEvent{}.Mixin()
	runeventMixinFields0 := runeventMixin[0].Fields()
	_ = runeventMixinFields0
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescTimestamp is the schema descriptor for timestamp field.
	runeventDescTimestamp := runeventMixinFields0[1].Descriptor()
	// runevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	runevent.DefaultTimestamp = runeventDescTimestamp.Default.(func() time.Time)
	// runeventDescRunID is the schema descriptor for run_id field.
	runeventDescRunID := runeventFields[0].Descriptor()
	// runevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	runevent.RunIDValidator = runeventDescRunID.Validators[0].(func(string) error)
	// runeventDescAction is the schema descriptor for action field.
	runeventDescAction := runeventFields[1].Descriptor()
	// runevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	runevent.ActionValidator = runeventDescAction.Validators[0].(func(string) error)
	// runeventDescScope is the schema descriptor for scope field.
	runeventDescScope := runeventFields[2].Descriptor()
	// runevent.DefaultScope holds the default value on creation for the scope field.
	runevent.DefaultScope = runeventDescScope.Default.(string)
	// runeventDescQuizzesServed is the schema descriptor for quizzes_served field.
	runeventDescQuizzesServed := runeventFields[3].Descriptor()
	// runevent.DefaultQuizzesServed holds the default value on creation for the quizzes_served field.
	runevent.DefaultQuizzesServed = runeventDescQuizzesServed.Default.(int)
	// runeventDescCorrectAnswers is the schema descriptor for correct_answers field.
	runeventDescCorrectAnswers := runeventFields[4].Descriptor()
	// runevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	runevent.DefaultCorrectAnswers = runeventDescCorrectAnswers.Default.(int)
	// runeventDescDurationSecs is the schema descriptor for duration_secs field.
	runeventDescDurationSecs := runeventFields[5].Descriptor()
	// runevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	runevent.DefaultDurationSecs = runeventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
