// Package monitor provisions watsonx.governance monitoring for prompt
// templates and relays their inference payloads.
//
// A Monitor is bound to exactly one container: a deployment space (deployment
// stage "production") or a project (deployment stage "development"). Two
// constructors select the kind of prompt template it registers:
//
//   - NewPromptMonitor for prompt templates running on a watsonx.ai
//     foundation model;
//   - NewExternalPromptMonitor for detached prompt templates whose model is
//     hosted elsewhere.
//
// CreatePromptMonitor runs the provisioning workflow in order:
//
//  1. register the prompt-template asset;
//  2. deploy it, for space containers only;
//  3. set up generative AI quality monitoring.
//
// The monitoring service sometimes rejects the first prompt setup with a 403
// "The user entitlement does not exist" until a data mart is mapped to the
// container. In that case the first data mart is mapped and the setup is
// retried once. No data mart is ever created; if none exists ErrNoDataMart is
// returned.
//
// PayloadLogging stores scoring records into the payload logging data set of a
// subscription created by CreatePromptMonitor.
//
// Credentials come from either an IBM Cloud API key plus region, or a Cloud
// Pak for Data credential bundle:
//
//	cfg := monitor.Config{APIKey: apiKey, SpaceID: spaceID}
//	m, err := monitor.NewPromptMonitor(cfg, monitor.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	res, err := m.CreatePromptMonitor(ctx, monitor.PromptTemplate{
//		Name:    "summarize",
//		ModelID: "ibm/granite-13b-chat-v2",
//		TaskID:  monitor.TaskSummarization,
//	})
//
// A Monitor is not safe for concurrent use.
package monitor
