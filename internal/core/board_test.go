package core_test

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/core"
	"taskboard/internal/core/fake"
	"taskboard/internal/repository"
	tokenIssuer "taskboard/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Board", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context
		tokenTTL   time.Duration

		board *core.Board

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		tokenTTL = 24 * time.Hour

		board = core.NewBoard(fakeLogger, fakeRepo, fakeJWT, tokenTTL)

		fakeErr = errors.New("fake error")
	})

	Describe("Signup", func() {
		var (
			creds    core.Credentials
			session  core.Session
			err      error
			genToken *jwt.Token
		)

		BeforeEach(func() {
			creds = core.Credentials{
				Username: "testuser",
				Password: "testpass",
			}
			genToken = jwt.New(jwt.SigningMethodHS512)

			fakeRepo.CreateUserStub = func(ctx context.Context, user *repository.User) error {
				user.ID = 7
				return nil
			}
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			session, err = board.Signup(ctx, creds)
		})

		When("signup succeeds", func() {
			It("should store the user and return a session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.token"))
				Expect(session.User.ID).To(Equal(uint(7)))
				Expect(session.User.Username).To(Equal("testuser"))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, argUser := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUser.Username).To(Equal("testuser"))
				Expect(argUser.PasswordHash).NotTo(Equal("testpass"))
				Expect(argUser.PasswordHash).NotTo(BeEmpty())

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					UserName:   "testuser",
					Subject:    "7",
					Expiration: tokenTTL,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.ErrUsernameTaken)
			})

			It("should return username taken error", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})

		When("storing the user fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			creds          core.Credentials
			session        core.Session
			err            error
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			creds = core.Credentials{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			session, err = board.Login(ctx, creds)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           3,
					Username:     creds.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a session with a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.token"))
				Expect(session.User.ID).To(Equal(uint(3)))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, argUsername := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(argUsername).To(Equal(creds.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen.Subject).To(Equal("3"))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     creds.Username,
					PasswordHash: hashedPassword,
				}, nil)
				creds.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})
	})

	Describe("VerifyToken", func() {
		var (
			token string
			user  core.UserRecord
			err   error
		)

		BeforeEach(func() {
			token = "valid.token"
		})

		JustBeforeEach(func() {
			user, err = board.VerifyToken(ctx, token)
		})

		When("token is valid and the user exists", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "7"}, nil)
				fakeRepo.GetUserByIDReturns(repository.User{
					ID:       7,
					Username: "testuser",
				}, nil)
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(7)))
				Expect(user.Username).To(Equal("testuser"))

				Expect(fakeJWT.ValidateCallCount()).To(Equal(1))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal(token))

				Expect(fakeRepo.GetUserByIDCallCount()).To(Equal(1))
				_, argID := fakeRepo.GetUserByIDArgsForCall(0)
				Expect(argID).To(Equal(uint(7)))
			})
		})

		When("token validation fails", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return token not valid error", func() {
				Expect(err).To(MatchError(core.ErrTokenNotValid))
			})
		})

		When("subject claim is not a string", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": 7}, nil)
			})

			It("should return token not valid error", func() {
				Expect(err).To(MatchError(core.ErrTokenNotValid))
			})
		})

		When("subject is not a numeric id", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "not-a-number"}, nil)
			})

			It("should return token not valid error", func() {
				Expect(err).To(MatchError(core.ErrTokenNotValid))
			})
		})

		When("the user no longer exists", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "7"}, nil)
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return token not valid error", func() {
				Expect(err).To(MatchError(core.ErrTokenNotValid))
			})
		})
	})

	Describe("ListTasks", func() {
		var (
			userID uint
			tasks  []core.TaskRecord
			err    error
		)

		BeforeEach(func() {
			userID = 7
		})

		JustBeforeEach(func() {
			tasks, err = board.ListTasks(ctx, userID)
		})

		When("the user has tasks", func() {
			BeforeEach(func() {
				fakeRepo.GetUserTasksReturns([]repository.Task{
					{ID: 2, Title: "second", UserID: userID},
					{ID: 1, Title: "first", UserID: userID},
				}, nil)
			})

			It("should return the task records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tasks).To(HaveLen(2))
				Expect(tasks[0].ID).To(Equal(uint(2)))
				Expect(tasks[1].Title).To(Equal("first"))

				Expect(fakeRepo.GetUserTasksCallCount()).To(Equal(1))
				_, argUserID := fakeRepo.GetUserTasksArgsForCall(0)
				Expect(argUserID).To(Equal(userID))
			})
		})

		When("the user has no tasks", func() {
			BeforeEach(func() {
				fakeRepo.GetUserTasksReturns([]repository.Task{}, nil)
			})

			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tasks).To(BeEmpty())
			})
		})

		When("fetching tasks fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserTasksReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateTask", func() {
		var (
			userID uint
			draft  core.TaskDraft
			task   core.TaskRecord
			err    error
		)

		BeforeEach(func() {
			userID = 7
			draft = core.TaskDraft{
				Title:       "write report",
				Description: "quarterly numbers",
				Status:      core.StatusInProgress,
			}

			fakeRepo.CreateTaskStub = func(ctx context.Context, task *repository.Task) error {
				task.ID = 42
				return nil
			}
		})

		JustBeforeEach(func() {
			task, err = board.CreateTask(ctx, userID, draft)
		})

		When("creation succeeds", func() {
			It("should store the task scoped to the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(task.ID).To(Equal(uint(42)))
				Expect(task.Title).To(Equal("write report"))
				Expect(task.Status).To(Equal(core.StatusInProgress))
				Expect(task.UserID).To(Equal(userID))

				Expect(fakeRepo.CreateTaskCallCount()).To(Equal(1))
				_, argTask := fakeRepo.CreateTaskArgsForCall(0)
				Expect(argTask.UserID).To(Equal(userID))
			})
		})

		When("status is omitted", func() {
			BeforeEach(func() {
				draft.Status = ""
			})

			It("should default the status to todo", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(task.Status).To(Equal(core.StatusTodo))
			})
		})

		When("status is not a board column", func() {
			BeforeEach(func() {
				draft.Status = "archived"
			})

			It("should return invalid status error", func() {
				Expect(err).To(MatchError(core.ErrInvalidStatus))
				Expect(fakeRepo.CreateTaskCallCount()).To(Equal(0))
			})
		})

		When("storing the task fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateTaskStub = nil
				fakeRepo.CreateTaskReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateTask", func() {
		var (
			userID uint
			taskID uint
			patch  core.TaskPatch
			task   core.TaskRecord
			err    error
		)

		BeforeEach(func() {
			userID = 7
			taskID = 42

			newStatus := core.StatusDone
			patch = core.TaskPatch{Status: &newStatus}

			fakeRepo.UpdateTaskReturns(repository.Task{
				ID:     taskID,
				Title:  "write report",
				Status: core.StatusDone,
				UserID: userID,
			}, nil)
		})

		JustBeforeEach(func() {
			task, err = board.UpdateTask(ctx, userID, taskID, patch)
		})

		When("update succeeds", func() {
			It("should apply only the supplied fields", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(task.Status).To(Equal(core.StatusDone))

				Expect(fakeRepo.UpdateTaskCallCount()).To(Equal(1))
				_, argUserID, argTaskID, argUpdates := fakeRepo.UpdateTaskArgsForCall(0)
				Expect(argUserID).To(Equal(userID))
				Expect(argTaskID).To(Equal(taskID))
				Expect(argUpdates).To(Equal(map[string]any{"status": core.StatusDone}))
			})
		})

		When("several fields are supplied", func() {
			BeforeEach(func() {
				title := "new title"
				completed := true
				patch.Title = &title
				patch.Completed = &completed
			})

			It("should include every supplied field in the updates", func() {
				Expect(err).NotTo(HaveOccurred())

				_, _, _, argUpdates := fakeRepo.UpdateTaskArgsForCall(0)
				Expect(argUpdates).To(Equal(map[string]any{
					"title":     "new title",
					"status":    core.StatusDone,
					"completed": true,
				}))
			})
		})

		When("status is not a board column", func() {
			BeforeEach(func() {
				badStatus := "archived"
				patch.Status = &badStatus
			})

			It("should return invalid status error", func() {
				Expect(err).To(MatchError(core.ErrInvalidStatus))
				Expect(fakeRepo.UpdateTaskCallCount()).To(Equal(0))
			})
		})

		When("the task is not owned by the user", func() {
			BeforeEach(func() {
				fakeRepo.UpdateTaskReturns(repository.Task{}, repository.ErrTaskNotFound)
			})

			It("should return task not found error", func() {
				Expect(err).To(MatchError(core.ErrTaskNotFound))
			})
		})

		When("update fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdateTaskReturns(repository.Task{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteTask", func() {
		var (
			userID uint
			taskID uint
			err    error
		)

		BeforeEach(func() {
			userID = 7
			taskID = 42
		})

		JustBeforeEach(func() {
			err = board.DeleteTask(ctx, userID, taskID)
		})

		When("delete succeeds", func() {
			BeforeEach(func() {
				fakeRepo.DeleteTaskReturns(nil)
			})

			It("should delete the task scoped to the user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeleteTaskCallCount()).To(Equal(1))
				_, argUserID, argTaskID := fakeRepo.DeleteTaskArgsForCall(0)
				Expect(argUserID).To(Equal(userID))
				Expect(argTaskID).To(Equal(taskID))
			})
		})

		When("the task is not owned by the user", func() {
			BeforeEach(func() {
				fakeRepo.DeleteTaskReturns(repository.ErrTaskNotFound)
			})

			It("should return task not found error", func() {
				Expect(err).To(MatchError(core.ErrTaskNotFound))
			})
		})

		When("delete fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteTaskReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
