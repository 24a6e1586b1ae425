// Package factsheets is a client for the watsonx.governance prompt-template
// asset API.
//
// It registers two kinds of assets in a project or deployment space:
//
//   - platform-native prompt templates (CreatePrompt), stored in structured
//     input mode and bound to a watsonx.ai foundation model;
//   - detached prompt templates (CreateDetachedPrompt), which describe a prompt
//     evaluated against a model hosted outside the platform.
//
// Both calls return the asset id used by the deployment and monitoring
// services.
//
// Basic usage:
//
//	cfg, _ := factsheets.NewConfig()
//	auth, _ := auth.NewIAMAuthenticator(auth.IAMConfig{APIKey: apiKey})
//	client, _ := factsheets.NewClient(cfg, auth, nil)
//
//	id, err := client.CreatePrompt(ctx, factsheets.PromptRequest{
//		ContainerID:   spaceID,
//		ContainerType: factsheets.ContainerSpace,
//		Name:          "summarize",
//		ModelID:       "ibm/granite-13b-chat-v2",
//		TaskID:        "summarization",
//	})
package factsheets
