package assessment

import (
	"fmt"

	"neuma/internal/model"
)

// questions is the fixed VARK inventory. Each question offers exactly one
// option per style, so every style is reachable from every question.
var questions = []model.Question{
	{
		ID:     1,
		Prompt: "Quando você precisa aprender a usar um novo aplicativo, você prefere:",
		Options: []model.Option{
			{Label: "Assistir a um vídeo tutorial mostrando o passo a passo.", Style: model.StyleVisual},
			{Label: "Ouvir alguém explicando como usar e fazer perguntas.", Style: model.StyleAuditory},
			{Label: "Ler o manual ou as instruções escritas.", Style: model.StyleReading},
			{Label: "Ir testando e explorando por conta própria.", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:     2,
		Prompt: "Em uma palestra ou aula, o que mais ajuda você a entender o conteúdo?",
		Options: []model.Option{
			{Label: "Slides com gráficos, esquemas e imagens.", Style: model.StyleVisual},
			{Label: "A fala clara e a entonação do palestrante.", Style: model.StyleAuditory},
			{Label: "Receber um resumo por escrito.", Style: model.StyleReading},
			{Label: "Participar com atividades, demonstrações ou experiências.", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:     3,
		Prompt: "Quando você tenta memorizar algo, o que costuma fazer?",
		Options: []model.Option{
			{Label: "Associa imagens ou esquemas mentais ao conteúdo.", Style: model.StyleVisual},
			{Label: "Repete em voz alta ou grava áudios para ouvir depois.", Style: model.StyleAuditory},
			{Label: "Faz anotações, resumos ou reescreve várias vezes.", Style: model.StyleReading},
			{Label: "Associa com movimentos, situações práticas ou exemplos do dia a dia.", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:     4,
		Prompt: "Ao receber uma receita culinária nova, você prefere:",
		Options: []model.Option{
			{Label: "Ver um vídeo mostrando a receita sendo preparada.", Style: model.StyleVisual},
			{Label: "Ouvir alguém explicando o passo a passo por telefone ou pessoalmente.", Style: model.StyleAuditory},
			{Label: "Ler a receita escrita com todos os detalhes.", Style: model.StyleReading},
			{Label: "Ir preparando enquanto aprende, mesmo que erre.", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:     5,
		Prompt: "Quando está em um museu ou local histórico, o que mais chama sua atenção?",
		Options: []model.Option{
			{Label: "As imagens, maquetes e exposições visuais.", Style: model.StyleVisual},
			{Label: "Os áudios com explicações ou guias falando sobre o local.", Style: model.StyleAuditory},
			{Label: "As placas com textos explicativos.", Style: model.StyleReading},
			{Label: "As reconstruções interativas ou a possibilidade de tocar objetos.", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:     6,
		Prompt: "Para aprender um novo idioma, você prefere:",
		Options: []model.Option{
			{Label: "Usar aplicativos com imagens e associações visuais.", Style: model.StyleVisual},
			{Label: "Ouvir músicas, podcasts ou conversar com nativos.", Style: model.StyleAuditory},
			{Label: "Ler textos e fazer anotações de vocabulário.", Style: model.StyleReading},
			{Label: "Praticar situações reais, como simulações de diálogos.", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:     7,
		Prompt: "Quando está tentando lembrar o nome de uma pessoa, você costuma:",
		Options: []model.Option{
			{Label: "Visualizar o rosto dela ou o local onde a viu.", Style: model.StyleVisual},
			{Label: "Recordar a voz ou a conversa que tiveram.", Style: model.StyleAuditory},
			{Label: "Lembrar como o nome era escrito.", Style: model.StyleReading},
			{Label: "Recordar o que estavam fazendo juntos.", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:     8,
		Prompt: "Diante de um novo conteúdo na escola/faculdade, você sente mais facilidade quando:",
		Options: []model.Option{
			{Label: "O professor usa esquemas, gráficos e imagens.", Style: model.StyleVisual},
			{Label: "A explicação é verbal e clara.", Style: model.StyleAuditory},
			{Label: "Há materiais de leitura, apostilas ou slides disponíveis.", Style: model.StyleReading},
			{Label: "Você participa de experimentos ou atividades práticas.", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:     9,
		Prompt: "Em uma loja ou lugar novo, você costuma se orientar melhor:",
		Options: []model.Option{
			{Label: "Observando placas, mapas ou sinalizações visuais.", Style: model.StyleVisual},
			{Label: "Perguntando a alguém como chegar ao local.", Style: model.StyleAuditory},
			{Label: "Lendo descrições ou instruções do local.", Style: model.StyleReading},
			{Label: "Caminhando, testando caminhos até encontrar.", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:     10,
		Prompt: "Qual destas atividades você acha mais agradável para aprender algo novo?",
		Options: []model.Option{
			{Label: "Desenhar ou assistir vídeos explicativos.", Style: model.StyleVisual},
			{Label: "Participar de discussões em grupo ou ouvir podcasts.", Style: model.StyleAuditory},
			{Label: "Ler livros, artigos e fazer anotações.", Style: model.StyleReading},
			{Label: "Praticar diretamente, montar, desmontar, experimentar.", Style: model.StyleKinesthetic},
		},
	},
}

// Questions returns the full inventory in presentation order.
func Questions() []model.Question {
	return questions
}

// QuestionCount is the number of questions in the inventory.
func QuestionCount() int {
	return len(questions)
}

// ValidateQuestionSet checks the structural invariants of the inventory:
// exactly four options per question, each tagged with a distinct valid style.
// Called once during startup.
func ValidateQuestionSet() error {
	for _, q := range questions {
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d has %d options, want 4", q.ID, len(q.Options))
		}
		seen := map[model.LearningStyle]bool{}
		for _, opt := range q.Options {
			if !opt.Style.IsValid() {
				return fmt.Errorf("question %d has option with unknown style %q", q.ID, opt.Style)
			}
			if seen[opt.Style] {
				return fmt.Errorf("question %d tags style %q twice", q.ID, opt.Style)
			}
			seen[opt.Style] = true
		}
	}
	return nil
}
