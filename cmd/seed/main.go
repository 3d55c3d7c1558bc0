package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"neuma/internal/codegen"
	"neuma/internal/config"
	"neuma/internal/model"
	"neuma/internal/repository"
)

// Seeds a demo teacher with one classroom and a handful of activities, plus
// a demo student already joined. Safe to run once against an empty database.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)

	users := repository.NewUserRepo(db)
	classrooms := repository.NewClassroomRepo(db)
	memberships := repository.NewMembershipRepo(db)
	activities := repository.NewActivityRepo(db)

	for _, ensure := range []func(context.Context) error{
		users.EnsureIndexes,
		classrooms.EnsureIndexes,
		memberships.EnsureIndexes,
		activities.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatalf("Failed to ensure indexes: %v", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	teacher := &model.User{
		ID:           codegen.NewID("usr"),
		Email:        "professor@escola.br",
		FullName:     "Professor Demo",
		Role:         model.RoleTeacher,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(ctx, teacher); err != nil {
		log.Fatalf("Failed to create teacher: %v", err)
	}

	student := &model.User{
		ID:           codegen.NewID("usr"),
		Email:        "aluno@escola.br",
		FullName:     "Aluno Demo",
		Role:         model.RoleStudent,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(ctx, student); err != nil {
		log.Fatalf("Failed to create student: %v", err)
	}

	classroom := &model.Classroom{
		ID:        codegen.NewID("cls"),
		OwnerID:   teacher.ID,
		Name:      "Turma Demonstração",
		Code:      codegen.NewCode(),
		CreatedAt: time.Now(),
	}
	if err := classrooms.Create(ctx, classroom); err != nil {
		log.Fatalf("Failed to create classroom: %v", err)
	}

	if err := memberships.Create(ctx, &model.Membership{
		StudentID:   student.ID,
		ClassroomID: classroom.ID,
		JoinedAt:    time.Now(),
	}); err != nil {
		log.Fatalf("Failed to join student: %v", err)
	}

	seedActivities := []*model.Activity{
		{
			Title:       "Mapa mental de frações",
			Description: "Construa um mapa mental colorido relacionando frações equivalentes.",
			Style:       model.StyleVisual,
		},
		{
			Title:       "Áudio-aula de história",
			Description: "Ouça o episódio sobre o período colonial e anote três fatos.",
			Style:       model.StyleAuditory,
		},
		{
			Title:       "Resumo do capítulo 4",
			Description: "Leia o capítulo e escreva um resumo de uma página.",
			Style:       model.StyleReading,
		},
		{
			Title:       "Experimento de densidade",
			Description: "Monte o experimento com água, óleo e mel e registre o resultado.",
			Style:       model.StyleKinesthetic,
		},
	}
	for _, a := range seedActivities {
		a.ID = codegen.NewID("act")
		a.ClassroomID = classroom.ID
		a.OwnerID = teacher.ID
		a.CreatedAt = time.Now()
		if err := activities.Create(ctx, a); err != nil {
			log.Fatalf("Failed to create activity %q: %v", a.Title, err)
		}
	}

	fmt.Println("Seeded demo data:")
	fmt.Printf("  teacher: %s / senha123\n", teacher.Email)
	fmt.Printf("  student: %s / senha123\n", student.Email)
	fmt.Printf("  classroom %q with join code %s\n", classroom.Name, classroom.Code)
	fmt.Printf("  %d activities\n", len(seedActivities))
}
