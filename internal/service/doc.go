// Package service contains the vocabulary use cases. It orchestrates the
// scoring heuristic and the stores defined in internal/store: handing out a
// word, scoring and logging a practice sentence, and summarizing the log.
//
// Services receive their dependencies through constructor injection and
// depend only on store interfaces, never on a concrete database.
package service
