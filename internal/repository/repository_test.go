package repository_test

import (
	"context"
	"errors"

	"taskboard/internal/db"
	"taskboard/internal/repository"
	"taskboard/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BoardRepository", func() {
	var (
		repo        *repository.BoardRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewBoardRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate the user and task tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Task{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user *repository.User
			err  error
		)

		BeforeEach(func() {
			user = &repository.User{
				Username:     "alice",
				PasswordHash: "hashed_password",
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CreateOneReturns(nil)
			})

			It("should store the user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.CreateOneCallCount()).To(Equal(1))
				_, arg := fakeStorage.CreateOneArgsForCall(0)
				Expect(arg).To(Equal(user))
			})
		})

		When("username already exists", func() {
			BeforeEach(func() {
				fakeStorage.CreateOneReturns(db.ErrDuplicate)
			})

			It("should return username taken error", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateOneReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user     repository.User
			err      error
			username string
			testUser repository.User
		)

		BeforeEach(func() {
			username = "alice"
			testUser = repository.User{
				ID:           3,
				Username:     username,
				PasswordHash: "hashed_password",
			}
		})

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, username)
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					user := dest.(*repository.User)
					*user = testUser
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(testUser))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal(username))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByID", func() {
		var (
			user repository.User
			err  error
			id   uint
		)

		BeforeEach(func() {
			id = 3
		})

		JustBeforeEach(func() {
			user, err = repo.GetUserByID(ctx, id)
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					user := dest.(*repository.User)
					*user = repository.User{ID: 3, Username: "alice"}
					return nil
				}
			})

			It("should look the user up by id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(3)))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(id))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateTask", func() {
		var (
			task *repository.Task
			err  error
		)

		BeforeEach(func() {
			task = &repository.Task{
				Title:  "write report",
				Status: "todo",
				UserID: 3,
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateTask(ctx, task)
		})

		When("insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CreateOneReturns(nil)
			})

			It("should store the task", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.CreateOneCallCount()).To(Equal(1))
				_, arg := fakeStorage.CreateOneArgsForCall(0)
				Expect(arg).To(Equal(task))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateOneReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserTasks", func() {
		var (
			userID uint
			tasks  []repository.Task
			err    error
		)

		BeforeEach(func() {
			userID = 3
		})

		JustBeforeEach(func() {
			tasks, err = repo.GetUserTasks(ctx, userID)
		})

		When("the user has tasks", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, orderBy string, dest any) error {
					userTasks := dest.(*[]repository.Task)
					*userTasks = []repository.Task{
						{ID: 2, UserID: userID},
						{ID: 1, UserID: userID},
					}
					return nil
				}
			})

			It("should return the tasks newest first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tasks).To(HaveLen(2))
				Expect(tasks[0].ID).To(Equal(uint(2)))

				Expect(fakeStorage.GetAllByCallCount()).To(Equal(1))
				_, col, val, orderBy, dest := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("user_id"))
				Expect(val).To(Equal(userID))
				Expect(orderBy).To(Equal("id DESC"))
				Expect(dest).To(BeAssignableToTypeOf(&[]repository.Task{}))
			})
		})

		When("the user has no tasks", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(nil)
			})

			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tasks).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateTask", func() {
		var (
			userID  uint
			taskID  uint
			updates map[string]any
			task    repository.Task
			err     error
		)

		BeforeEach(func() {
			userID = 3
			taskID = 42
			updates = map[string]any{"status": "done"}
		})

		JustBeforeEach(func() {
			task, err = repo.UpdateTask(ctx, userID, taskID, updates)
		})

		When("the task exists and is owned by the user", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					updated := dest.(*repository.Task)
					*updated = repository.Task{ID: taskID, Status: "done", UserID: userID}
					return nil
				}
			})

			It("should update and return the task", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(task.Status).To(Equal("done"))

				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(1))
				_, model, argUpdates, query, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Task{}))
				Expect(argUpdates).To(Equal(updates))
				Expect(query).To(Equal("id = ? AND user_id = ?"))
				Expect(args).To(Equal([]any{taskID, userID}))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(taskID))
			})
		})

		When("no rows match", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should return task not found error", func() {
				Expect(err).To(MatchError(repository.ErrTaskNotFound))
				Expect(fakeStorage.GetOneByCallCount()).To(Equal(0))
			})
		})

		When("update fails", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("reloading the updated task fails", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
				fakeStorage.GetOneByReturns(fakeErr)
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
			userID = 3
			taskID = 42
		})

		JustBeforeEach(func() {
			err = repo.DeleteTask(ctx, userID, taskID)
		})

		When("the task exists and is owned by the user", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(1, nil)
			})

			It("should delete the task", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.DeleteWhereCallCount()).To(Equal(1))
				_, model, query, args := fakeStorage.DeleteWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Task{}))
				Expect(query).To(Equal("id = ? AND user_id = ?"))
				Expect(args).To(Equal([]any{taskID, userID}))
			})
		})

		When("no rows match", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, nil)
			})

			It("should return task not found error", func() {
				Expect(err).To(MatchError(repository.ErrTaskNotFound))
			})
		})

		When("delete fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
