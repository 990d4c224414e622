// Package polydub provides the Go client for the Polydub
// media-processing API: video dubbing, voice cloning and text-to-speech.
//
// # Basic Usage
//
// Create a client with your API key:
//
//	client, err := polydub.New("pd_live_your_api_key")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// or from POLYDUB_* environment variables:
//
//	client, err := polydub.NewFromEnv()
//
// # Dubbing
//
// Dubbing, cloning and synthesis are asynchronous: the call returns a
// job, and WaitForJob polls it until a terminal state:
//
//	ctx := context.Background()
//	job, err := client.Dub(ctx, polydub.DubOptions{
//		Source:   "youtube",
//		URL:      "https://youtube.com/watch?v=...",
//		Language: "es-ES",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	job, err = client.WaitForJob(ctx, job.ID, &polydub.WaitOptions{
//		Timeout: 10 * time.Minute,
//	})
//
// # Configuration Options
//
//	client, err := polydub.New("pd_live_...",
//		polydub.WithBaseURL("https://polydub.internal/v1"),
//		polydub.WithTimeout(60*time.Second),
//		polydub.WithLogger(logger),
//	)
//
// # Error Handling
//
// Every failing operation returns a *polydub.APIError classified by the
// response status. Use the predicate helpers or errors.As:
//
//	voice, err := client.GetVoice(ctx, "voice-id")
//	if polydub.IsNotFoundError(err) {
//		// voice does not exist
//	}
//
// WaitForJob's own wall-clock budget is the one exception; when it runs
// out the returned error wraps polydub.ErrWaitTimeout.
//
// # Thread Safety
//
// Client is safe for concurrent use. Configuration is immutable after
// construction and each call owns its own timeout and cancellation.
package polydub
