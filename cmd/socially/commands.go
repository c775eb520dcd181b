package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/anonto42/socially/backend/internal/client"
	"github.com/anonto42/socially/backend/internal/models"
	"github.com/spf13/cobra"
)

type cliOptions struct {
	apiURL  string
	token   string
	userID  string
	timeout time.Duration
}

// newRootCmd builds the CLI. A nil actions talks HTTP to --api with --token.
func newRootCmd(out io.Writer, actions client.Actions) *cobra.Command {
	opts := &cliOptions{}
	toaster := client.NewWriterToaster(out)

	root := &cobra.Command{
		Use:           "socially",
		Short:         "Terminal client for the socially API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if actions == nil {
				actions = client.NewHTTPActions(strings.TrimRight(opts.apiURL, "/"), opts.token)
			}
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.apiURL, "api", envOr("SOCIALLY_API", "http://localhost:8080"), "API base URL")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("SOCIALLY_TOKEN"), "session token from firebase-login")
	root.PersistentFlags().StringVar(&opts.userID, "user-id", os.Getenv("SOCIALLY_USER_ID"), "your local user id, used to show your likes")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "per command timeout")

	withTimeout := func(cmd *cobra.Command) (context.Context, context.CancelFunc) {
		return context.WithTimeout(cmd.Context(), opts.timeout)
	}
	act := func() client.Actions { return actions }

	root.AddCommand(
		&cobra.Command{
			Use:   "feed",
			Short: "Show the feed, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := withTimeout(cmd)
				defer cancel()
				posts, err := act().GetPosts(ctx)
				if err != nil {
					return err
				}
				renderFeed(out, posts, opts.userID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "like POST_ID",
			Short: "Like a post, or unlike it if you already do",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := withTimeout(cmd)
				defer cancel()
				posts, err := act().GetPosts(ctx)
				if err != nil {
					return err
				}
				post := findPost(posts, args[0])
				if post == nil {
					return fmt.Errorf("post %s not found", args[0])
				}
				button := client.NewLikeButton(act(), post.ID, likedBy(post, opts.userID), int(post.LikesCount))
				err = button.Toggle(ctx)
				v := button.View()
				fmt.Fprintf(out, "liked=%t likes=%d (%s)\n", v.HasLiked, v.Likes, v.State)
				if err != nil {
					toaster.Error("Failed to toggle like")
				}
				return err
			},
		},
		&cobra.Command{
			Use:   "comment POST_ID TEXT...",
			Short: "Comment on a post",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := withTimeout(cmd)
				defer cancel()
				box := client.NewCommentBox(act(), toaster, args[0])
				box.SetDraft(strings.Join(args[1:], " "))
				return box.Submit(ctx)
			},
		},
		&cobra.Command{
			Use:   "delete POST_ID",
			Short: "Delete one of your posts",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := withTimeout(cmd)
				defer cancel()
				return client.NewDeleteButton(act(), toaster, args[0]).Click(ctx)
			},
		},
		&cobra.Command{
			Use:   "follow USER_ID",
			Short: "Follow a user, or unfollow if you already do",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := withTimeout(cmd)
				defer cancel()
				return client.NewFollowButton(act(), toaster, args[0]).Click(ctx)
			},
		},
		newNotificationsCmd(act, toaster, out, withTimeout),
	)

	root.SetContext(context.Background())
	return root
}

func newNotificationsCmd(act func() client.Actions, toaster client.Toaster, out io.Writer, withTimeout func(*cobra.Command) (context.Context, context.CancelFunc)) *cobra.Command {
	var markRead bool
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List your notifications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			notifications, err := act().GetNotifications(ctx)
			if err != nil {
				return err
			}
			renderNotifications(out, notifications)
			if !markRead {
				return nil
			}

			var unread []string
			for _, n := range notifications {
				if !n.Read {
					unread = append(unread, n.ID)
				}
			}
			if len(unread) == 0 {
				return nil
			}
			if res := act().MarkNotificationsAsRead(ctx, unread); !res.Success {
				toaster.Error("Failed to mark notifications as read")
				return fmt.Errorf("mark read: %s", res.Error)
			}
			toaster.Success(fmt.Sprintf("Marked %d notifications as read", len(unread)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&markRead, "mark-read", false, "mark the listed unread notifications as read")
	return cmd
}

func renderFeed(out io.Writer, posts []models.Post, userID string) {
	if len(posts) == 0 {
		fmt.Fprintln(out, "No posts yet.")
		return
	}
	for _, p := range posts {
		author := "unknown"
		if p.Author != nil {
			author = "@" + p.Author.Username
		}
		heart := "♡"
		if likedBy(&p, userID) {
			heart = "♥"
		}
		fmt.Fprintf(out, "%s  %s  %s\n", p.ID, author, p.CreatedAt.Format(time.RFC822))
		if p.Content != "" {
			fmt.Fprintf(out, "    %s\n", p.Content)
		}
		if p.Image != "" {
			fmt.Fprintf(out, "    [image] %s\n", p.Image)
		}
		fmt.Fprintf(out, "    %s %d   comments %d\n", heart, p.LikesCount, p.CommentsCount)
	}
}

func renderNotifications(out io.Writer, notifications []models.NotificationView) {
	if len(notifications) == 0 {
		fmt.Fprintln(out, "No notifications yet.")
		return
	}
	for _, n := range notifications {
		mark := " "
		if !n.Read {
			mark = "*"
		}
		line := fmt.Sprintf("%s %s @%s %s", mark, n.CreatedAt.Format(time.RFC822), n.Creator.Username, describe(n.Type))
		if n.Comment != nil {
			line += fmt.Sprintf(": %q", n.Comment.Content)
		} else if n.Post != nil && n.Post.Content != "" {
			line += fmt.Sprintf(" (%q)", n.Post.Content)
		}
		fmt.Fprintln(out, line)
	}
}

func describe(t models.NotificationType) string {
	switch t {
	case models.NotificationFollow:
		return "started following you"
	case models.NotificationLike:
		return "liked your post"
	case models.NotificationComment:
		return "commented on your post"
	default:
		return strings.ToLower(string(t))
	}
}

func findPost(posts []models.Post, id string) *models.Post {
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i]
		}
	}
	return nil
}

func likedBy(post *models.Post, userID string) bool {
	if userID == "" {
		return false
	}
	for _, like := range post.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
