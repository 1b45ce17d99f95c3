// Package service contains the application use cases of the classroom
// assistant. It orchestrates the prompt builders, the retrying generation
// client, the trend and content catalog, and the teacher session.
//
// Key components:
//
// 1. AssistantService:
//   - Builds a prompt for each dashboard feature and runs it through the
//     generation client with the configured attempt budget
//   - Stamps the session's last AI interaction on every generation request
//   - Drives the adopt/integrate workflow against the catalog and records
//     the result in the session history
//
// 2. Error Handling:
//   - Generated text is never an error: failures come back as displayable text
//   - Lookup and workflow failures are domain sentinels returned unwrapped
//   - Invalid input is wrapped in a ServiceError carrying the operation name
package service
